package main

import (
	"context"
	"sync"
	"time"

	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/content"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// hammers a content api with the requests the site sends for every page
func main() {
	var (
		flagAddr  = pflag.String("addr", "http://127.0.0.1:1234", "content api base url")
		flagNum   = pflag.Int("num", 100, "num repetitions")
		flagDelay = pflag.Duration("delay", 2*time.Second, "delay between repetitions")
	)
	pflag.Parse()

	l := zap.Must(zap.NewDevelopment())
	defer l.Sync() //nolint:errcheck

	var (
		ctx = context.Background()
		c   = client.New(l, *flagAddr)
		wg  sync.WaitGroup
	)
	for i := 1; i <= *flagNum; i++ {
		for _, category := range content.Categories {
			wg.Add(1)
			go func(num int) {
				defer wg.Done()
				start := time.Now()
				items, err := c.FetchByCategory(ctx, string(category))
				if err != nil {
					l.Error("category failed", zap.Int("num", num), zap.String("category", string(category)), zap.Error(err))
					return
				}
				for _, item := range items {
					if _, err := c.FetchByURL(ctx, item.URL); err != nil {
						l.Error("item failed", zap.Int("num", num), zap.String("url", item.URL), zap.Error(err))
					}
				}
				l.Info("category done", zap.Int("num", num), zap.String("category", string(category)), zap.Int("items", len(items)), zap.Duration("took", time.Since(start)))
			}(i)
		}
		time.Sleep(*flagDelay)
	}
	wg.Wait()
}

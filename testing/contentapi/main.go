package main

import (
	"net/http"
	"os"
	"time"

	"github.com/fitzmx6/portfolio/content"
	"github.com/fitzmx6/portfolio/pkg/mock"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// serves the fixture catalog or the items of a json file as content api for local development
func main() {
	var (
		flagJSONFile = pflag.String("json-file", "", "json file with an array of items, defaults to the built in fixtures")
		flagAddress  = pflag.String("addr", ":1234", "set the webserver address")
		flagDelay    = pflag.Duration("delay", 0, "delay every reply")
	)
	pflag.Parse()

	l := zap.Must(zap.NewDevelopment())
	defer l.Sync() //nolint:errcheck

	items := mock.MakeItems()
	if *flagJSONFile != "" {
		data, err := os.ReadFile(*flagJSONFile)
		if err != nil {
			l.Fatal("failed to read json file", zap.Error(err))
		}
		items = nil
		if err := json.Unmarshal(data, &items); err != nil {
			l.Fatal("failed to decode json file", zap.Error(err))
		}
	}

	api := mock.NewContentAPI(items...)
	api.SetDelay(*flagDelay)

	l.Info("start content api",
		zap.String("address", *flagAddress),
		zap.Int("items", len(items)),
		zap.Int("categories", len(content.Categories)),
	)
	server := &http.Server{
		Addr:              *flagAddress,
		Handler:           api,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		l.Fatal("content api stopped", zap.Error(err))
	}
}

package cmd

import (
	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/pkg/check"
	"github.com/fitzmx6/portfolio/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func NewCheckCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every listed item of the content api resolves by its url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := apiBaseURLFlag(v)
			if !utils.IsValidURL(base) {
				return errors.Errorf("a valid api base url is required, got %q", base)
			}

			l := zap.L()
			report, err := check.New(l,
				client.New(l.Named("client"), base),
				check.WithLimit(checkLimitFlag(v)),
			).Run(cmd.Context())
			if err != nil {
				return err
			}
			for _, finding := range report.Findings {
				l.Warn("finding", zap.Error(finding))
			}
			if len(report.Findings) > 0 {
				return errors.Wrapf(report.Err(), "%d findings", len(multierr.Errors(report.Err())))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addAPIBaseURLFlag(flags, v)
	addCheckLimitFlag(flags, v)

	return cmd
}

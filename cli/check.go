package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errInvalidForm = errors.New("form is invalid")

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FIXTURE",
		Short: "Report the validity and data set of a form fixture",
		Long: `check builds the form described by a YAML fixture, replays the actions
recorded for each input and prints every control's validity together with
the entries the form would submit. Files named by the fixture are read
relative to its directory. The command fails when the form is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
	return cmd
}

func (a *app) check(cmd *cobra.Command, path string) error {
	fx, err := LoadFixture(a.fs, path)
	if err != nil {
		return err
	}
	assets, err := fixtureAssets(a.fs, path)
	if err != nil {
		return err
	}
	form, submitter, err := fx.Build(assets)
	if err != nil {
		return errors.Wrapf(err, "build %s", path)
	}

	report := NewReport(form, submitter)
	a.logger.WithFields(logrus.Fields{
		"fixture":  path,
		"controls": len(report.Controls),
		"entries":  len(report.Entries),
		"valid":    report.Valid,
	}).Info("checked fixture")

	if err := writeReport(cmd.OutOrStdout(), report, a.v.GetString("output")); err != nil {
		return err
	}
	if !report.Valid {
		return errInvalidForm
	}
	return nil
}

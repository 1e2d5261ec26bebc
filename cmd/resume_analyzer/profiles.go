package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profilesJSON bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the job profiles in the knowledge base",
	RunE:  runProfiles,
}

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Print profiles as JSON")
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	_, reg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profiles := reg.Profiles()
	if profilesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	for _, p := range profiles {
		fmt.Fprintf(os.Stdout, "%-28s min %d yrs  $%.0f-$%.0f  (%d critical, %d required, %d preferred)\n",
			p.Role, p.MinExperience, p.Salary.Min, p.Salary.Max,
			len(p.Critical), len(p.Required), len(p.Preferred))
	}
	return nil
}

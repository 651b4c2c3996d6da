package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the veteran profile",
	Long:  `View or update the veteran background used in prompts and the claim packet.`,
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields via flags. Only the provided flags change;
omitted fields keep their current value.`,
	RunE: runProfileSet,
}

// Profile field flags.
var (
	profileName        string
	profileBranch      string
	profileDates       string
	profileDeployments string
	profileDuties      string
	profileOther       string
)

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileSetCmd.Flags().StringVar(&profileBranch, "branch", "", "Branch of service")
	profileSetCmd.Flags().StringVar(&profileDates, "dates", "", "Service dates (e.g. 2004-2012)")
	profileSetCmd.Flags().StringVar(&profileDeployments, "deployments", "", "Deployment locations")
	profileSetCmd.Flags().StringVar(&profileDuties, "duties", "", "MOS / duties")
	profileSetCmd.Flags().StringVar(&profileOther, "notes", "", "Other context")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	if w.Profile.IsEmpty() {
		cmd.Println("No profile set. Use 'claimmate profile set' to add one.")
		return nil
	}

	printField := func(label, value string) {
		if value != "" {
			cmd.Printf("%-13s %s\n", label+":", value)
		}
	}
	printField("Name", w.Profile.FullName)
	printField("Branch", w.Profile.Branch)
	printField("Dates", w.Profile.ServiceDates)
	printField("Deployments", w.Profile.DeploymentLocations)
	printField("Duties", w.Profile.MOSDuties)
	printField("Notes", w.Profile.OtherNotes)
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	ctx := context.Background()
	w, err := workspaceService.Get(ctx)
	if err != nil {
		return err
	}

	profile := w.Profile
	applyFlag(cmd, "name", &profile.FullName, profileName)
	applyFlag(cmd, "branch", &profile.Branch, profileBranch)
	applyFlag(cmd, "dates", &profile.ServiceDates, profileDates)
	applyFlag(cmd, "deployments", &profile.DeploymentLocations, profileDeployments)
	applyFlag(cmd, "duties", &profile.MOSDuties, profileDuties)
	applyFlag(cmd, "notes", &profile.OtherNotes, profileOther)

	if profile == w.Profile {
		cmd.Println("Nothing to update. Provide at least one flag.")
		return nil
	}

	if err := workspaceService.SetProfile(ctx, profile); err != nil {
		return err
	}
	cmd.Println("Profile updated.")
	return nil
}

// applyFlag writes the flag value only when the flag was explicitly set,
// so an empty string can clear a field.
func applyFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

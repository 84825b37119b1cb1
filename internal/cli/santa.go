package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"santa/internal/cli/api"
)

var santaCmd = &cobra.Command{
	Use:   "santa",
	Short: "Run and inspect secret santa pairings",
}

var santaRunCmd = &cobra.Command{
	Use:   "run <admin-id> <group-id>",
	Short: "Close a group and draw names",
	Long: `Close a group and assign every member a recipient.

Closing is permanent: nobody can join or leave afterwards, and the
draw cannot be repeated.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminID, err := parseID(args[0], "admin")
		if err != nil {
			return err
		}
		groupID, err := parseID(args[1], "group")
		if err != nil {
			return err
		}

		var result api.RunResult
		body := map[string]uint32{"admin_id": adminID}
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/secret-santa", groupID), body, &result); err != nil {
			return fmt.Errorf("running secret santa: %w", err)
		}
		if flagJSON {
			printJSON(result)
			return nil
		}
		fmt.Printf("Group %d closed; %d members drew names\n", groupID, result.Assigned)
		return nil
	},
}

var santaShowCmd = &cobra.Command{
	Use:   "show <user-id> <group-id>",
	Short: "Show who a member is gifting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}
		groupID, err := parseID(args[1], "group")
		if err != nil {
			return err
		}

		params := url.Values{"user_id": {strconv.FormatUint(uint64(userID), 10)}}
		var recipient api.Recipient
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/secret-santa", groupID), params, &recipient); err != nil {
			return fmt.Errorf("fetching recipient: %w", err)
		}
		if flagJSON {
			printJSON(recipient)
			return nil
		}
		if !recipient.Assigned {
			fmt.Printf("Group %d has not drawn names yet\n", groupID)
			return nil
		}
		fmt.Printf("User %d is gifting user %d\n", userID, *recipient.RecipientID)
		return nil
	},
}

func init() {
	santaCmd.AddCommand(santaRunCmd, santaShowCmd)
	rootCmd.AddCommand(santaCmd)
}

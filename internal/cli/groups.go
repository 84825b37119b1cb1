package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"santa/internal/cli/api"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage groups and memberships",
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create <creator-id>",
	Short: "Create a group admined by the given user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		creatorID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		var group api.Group
		if err := apiClient.Post("/groups", map[string]uint32{"creator_id": creatorID}, &group); err != nil {
			return fmt.Errorf("creating group: %w", err)
		}
		if flagJSON {
			printJSON(group)
			return nil
		}
		fmt.Printf("Created group %d (admin: user %d)\n", group.ID, creatorID)
		return nil
	},
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []api.Group
		if err := apiClient.Get("/groups", nil, &groups); err != nil {
			return fmt.Errorf("listing groups: %w", err)
		}
		if flagJSON {
			printJSON(groups)
			return nil
		}
		groupTable(groups)
		return nil
	},
}

var groupsGetCmd = &cobra.Command{
	Use:   "get <group-id>",
	Short: "Show a group and its members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID(args[0], "group")
		if err != nil {
			return err
		}

		var group api.GroupDetail
		if err := apiClient.Get(fmt.Sprintf("/groups/%d", groupID), nil, &group); err != nil {
			return fmt.Errorf("fetching group: %w", err)
		}
		if flagJSON {
			printJSON(group)
			return nil
		}
		fmt.Printf("Group %d (%s)\n", group.ID, groupStatus(group.Closed))
		memberTable(group.Members)
		return nil
	},
}

var groupsJoinCmd = &cobra.Command{
	Use:   "join <user-id> <group-id>",
	Short: "Join a group",
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

		var m api.Member
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/join", groupID), map[string]uint32{"user_id": userID}, &m); err != nil {
			return fmt.Errorf("joining group: %w", err)
		}
		if flagJSON {
			printJSON(m)
			return nil
		}
		fmt.Printf("User %d joined group %d\n", userID, groupID)
		return nil
	},
}

var groupsLeaveCmd = &cobra.Command{
	Use:   "leave <user-id> <group-id>",
	Short: "Leave a group",
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

		if err := apiClient.Post(fmt.Sprintf("/groups/%d/leave", groupID), map[string]uint32{"user_id": userID}, nil); err != nil {
			return fmt.Errorf("leaving group: %w", err)
		}
		fmt.Printf("User %d left group %d\n", userID, groupID)
		return nil
	},
}

var groupsPromoteCmd = &cobra.Command{
	Use:   "promote <admin-id> <user-id> <group-id>",
	Short: "Promote a member to admin",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminID, err := parseID(args[0], "admin")
		if err != nil {
			return err
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			return err
		}
		groupID, err := parseID(args[2], "group")
		if err != nil {
			return err
		}

		body := map[string]uint32{"admin_id": adminID, "user_id": userID}
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/admin", groupID), body, nil); err != nil {
			return fmt.Errorf("promoting member: %w", err)
		}
		fmt.Printf("User %d is now an admin of group %d\n", userID, groupID)
		return nil
	},
}

var groupsDemoteCmd = &cobra.Command{
	Use:   "demote <user-id> <group-id>",
	Short: "Give up the admin role",
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

		if err := apiClient.Post(fmt.Sprintf("/groups/%d/unadmin", groupID), map[string]uint32{"user_id": userID}, nil); err != nil {
			return fmt.Errorf("demoting admin: %w", err)
		}
		fmt.Printf("User %d is no longer an admin of group %d\n", userID, groupID)
		return nil
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <admin-id> <group-id>",
	Short: "Delete a group and all of its memberships",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminID, err := parseID(args[0], "admin")
		if err != nil {
			return err
		}
		groupID, err := parseID(args[1], "group")
		if err != nil {
			return err
		}

		if err := apiClient.Delete(fmt.Sprintf("/groups/%d", groupID), map[string]uint32{"admin_id": adminID}, nil); err != nil {
			return fmt.Errorf("deleting group: %w", err)
		}
		fmt.Printf("Deleted group %d\n", groupID)
		return nil
	},
}

var groupsMembersCmd = &cobra.Command{
	Use:   "members <group-id>",
	Short: "List a group's members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID(args[0], "group")
		if err != nil {
			return err
		}

		var members []api.Member
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/members", groupID), nil, &members); err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		if flagJSON {
			printJSON(members)
			return nil
		}
		memberTable(members)
		return nil
	},
}

var groupsAdminsCmd = &cobra.Command{
	Use:   "admins <group-id>",
	Short: "List a group's admins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID(args[0], "group")
		if err != nil {
			return err
		}

		var admins []api.Member
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/admins", groupID), nil, &admins); err != nil {
			return fmt.Errorf("listing admins: %w", err)
		}
		if flagJSON {
			printJSON(admins)
			return nil
		}
		memberTable(admins)
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(
		groupsCreateCmd, groupsListCmd, groupsGetCmd,
		groupsJoinCmd, groupsLeaveCmd,
		groupsPromoteCmd, groupsDemoteCmd,
		groupsDeleteCmd, groupsMembersCmd, groupsAdminsCmd,
	)
	rootCmd.AddCommand(groupsCmd)
}

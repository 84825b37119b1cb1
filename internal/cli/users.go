package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"santa/internal/cli/api"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage participants",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []api.User
		if err := apiClient.Get("/users", nil, &users); err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		if flagJSON {
			printJSON(users)
			return nil
		}
		userTable(users)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a new user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		var user api.User
		if err := apiClient.Post("/users", map[string]string{"name": name}, &user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		if flagJSON {
			printJSON(user)
			return nil
		}
		fmt.Printf("Created user %q (id: %d)\n", user.Name, user.ID)
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		var user api.User
		if err := apiClient.Get(fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}
		if flagJSON {
			printJSON(user)
			return nil
		}
		fmt.Printf("%d\t%s\n", user.ID, user.Name)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <user-id> <name>",
	Short: "Rename a user",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}
		name := strings.Join(args[1:], " ")

		var user api.User
		if err := apiClient.Put(fmt.Sprintf("/users/%d", userID), map[string]string{"name": name}, &user); err != nil {
			return fmt.Errorf("updating user: %w", err)
		}
		if flagJSON {
			printJSON(user)
			return nil
		}
		fmt.Printf("Updated user %d to %q\n", user.ID, user.Name)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Long: `Delete a user and their group memberships.

Deletion is refused while the user is the last admin of an open group
or belongs to a closed group; memberships that can be vacated are
removed even then.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		err = apiClient.Delete(fmt.Sprintf("/users/%d", userID), nil, nil)
		if err == nil {
			if flagJSON {
				printJSON(map[string]bool{"deleted": true})
				return nil
			}
			fmt.Printf("Deleted user %d\n", userID)
			return nil
		}

		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 409 {
			return fmt.Errorf("user %d not deleted: %s", userID, apiErr.Message)
		}
		return fmt.Errorf("deleting user: %w", err)
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersGetCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"santa/internal/cli/api"
)

// printJSON prints v as indented JSON to stdout.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// userTable prints users as a human-readable table.
func userTable(users []api.User) {
	if len(users) == 0 {
		fmt.Println("No users found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\n", u.ID, u.Name)
	}
	w.Flush()
}

// groupTable prints groups as a human-readable table.
func groupTable(groups []api.Group) {
	if len(groups) == 0 {
		fmt.Println("No groups found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS")
	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%s\n", g.ID, groupStatus(g.Closed))
	}
	w.Flush()
}

// memberTable prints memberships as a human-readable table.
func memberTable(members []api.Member) {
	if len(members) == 0 {
		fmt.Println("No members found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tROLE\tRECIPIENT")
	for _, m := range members {
		recipient := "-"
		if m.Recipient != nil {
			recipient = fmt.Sprintf("%d", *m.Recipient)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.UserID, m.Role, recipient)
	}
	w.Flush()
}

func groupStatus(closed bool) string {
	if closed {
		return "closed"
	}
	return "open"
}

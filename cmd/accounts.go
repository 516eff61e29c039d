package cmd

import (
	"fmt"

	"github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/feature/auth"

	"github.com/spf13/cobra"
)

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the demo login accounts",
	Long:  `Prints the fixed demo accounts accepted by the login endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("\n--- Demo Accounts ---")
		for _, u := range auth.DemoAccounts() {
			fmt.Printf("%-10s %-20s %s\n", u.Role, u.Email, u.Password)
		}
		fmt.Println("---------------------")
	},
}

func init() {
	RootCmd.AddCommand(accountsCmd)
}

package cmd

import (
	"fmt"
	"log"
	"os"
	"syscall"
	"vlivego/lib/vlive"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginOutput, "output", "o", "session.bin", "file to write the session dump to")
}

var loginOutput string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Signs in with an email account and dumps the session to a file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(os.Stderr, "password: ")
		pwd, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatal(err)
		}

		session, err := client.SignIn(cmd.Context(), args[0], string(pwd), false)
		if err != nil {
			log.Fatal(err)
		}

		f, err := os.OpenFile(loginOutput, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		err = vlive.DumpSession(session, f)
		if err != nil {
			log.Fatal(err)
		}

		// the dump contains the password and live cookies in the clear
		fmt.Printf("session written to %s, keep it private\n", loginOutput)
	},
}

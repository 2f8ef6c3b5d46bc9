package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lecturevault/lecturevault/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lecturevault",
		Short: "A lecture content management backend",
		Long:  "LectureVault — faculties, modules, subjects, and lecture material behind a year-scoped JSON API.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lecturevault %s (%s@%s)\n", build.Version, build.Branch, build.Commit)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

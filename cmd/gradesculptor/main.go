// Copyright Carter Zenke, 2026. All rights reserved.

// Package main is the entry point for the gradesculptor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it performs the conversion.
var rootCmd = &cobra.Command{
	Use:   "gradesculptor",
	Short: "Parse and clean student submissions",
	Long: `gradesculptor reads a quiz or exam submission export and writes each
student's written answers to a separate text file. Every submitted row in
the input produces <output>/<submission id>/written_answers.txt with one
formatted block per question-response column.

Input may be the CSV export or its XLSX equivalent; anything else is
skipped with a message.`,
	RunE: runClean,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gradesculptor.yaml or ~/.config/gradesculptor/config.yaml)")

	rootCmd.Flags().String("filename", "submission_metadata.csv", "the CSV file to read submission data from")
	rootCmd.Flags().String("id-column", "Submission ID", "the column containing submission IDs")
	rootCmd.Flags().StringP("output", "o", "submissions", "the directory to write answer files into")
	rootCmd.Flags().Bool("manifest", true, "write manifest.yaml into the output directory")

	viper.BindPFlag("filename", rootCmd.Flags().Lookup("filename"))
	viper.BindPFlag("id-column", rootCmd.Flags().Lookup("id-column"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("manifest", rootCmd.Flags().Lookup("manifest"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gradesculptor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gradesculptor"))
		}
	}

	viper.SetEnvPrefix("GRADESCULPTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/airgen/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configFileName = "airgen.config.yaml"

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create airgen.config.yaml and a .env entry for the API",
	Long:  `Write a config file with the default scheme sizes and make sure .env points BASE_URL at the operations API.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initializeProject(configFileName, ".env", initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func initializeProject(configPath, envPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		color.Yellow("⚠️  %s already exists (use --force to overwrite)", configPath)
	} else {
		data, err := config.Default().YAML()
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", configPath, err)
		}
		color.Green("✅ Created %s", configPath)
	}

	if err := handleEnvFile(envPath, "BASE_URL="+config.DefaultBaseURL+"\n"); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}

	color.Cyan("\n📝 Next steps:")
	color.White("  1. Point BASE_URL in %s at your operations API", envPath)
	color.White("  2. Run 'airgen scheme --dry-run' to preview a dataset")
	color.White("  3. Run 'airgen scheme' to load it")
	return nil
}

// handleEnvFile adds BASE_URL to envPath unless it is already set there.
func handleEnvFile(envPath, defaultEnvContent string) error {
	existing, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	vars, err := godotenv.Unmarshal(string(existing))
	if err != nil {
		return err
	}
	if _, ok := vars["BASE_URL"]; ok {
		return nil
	}

	content := string(existing)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "\n# Added by airgen\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(content), 0644)
}

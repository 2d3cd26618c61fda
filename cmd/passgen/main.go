package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

var (
	length    int
	count     int
	noUpper   bool
	noLower   bool
	noDigits  bool
	noSymbols bool
	showScore bool

	rootCmd = &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords and report their strength",
		Long: `passgen generates cryptographically random passwords from the selected
character classes and prints each one with its heuristic strength score.`,
		RunE: runGenerate,
	}
)

func init() {
	rootCmd.Flags().IntVarP(&length, "length", "l", service.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", service.MinLength, service.MaxLength))
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	rootCmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	rootCmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	rootCmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	rootCmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	rootCmd.Flags().BoolVarP(&showScore, "score", "s", true, "print strength label and score")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	svc := service.NewGeneratorService()
	req := model.GenerateRequest{
		Length:    length,
		Uppercase: boolPtr(!noUpper),
		Lowercase: boolPtr(!noLower),
		Digits:    boolPtr(!noDigits),
		Symbols:   boolPtr(!noSymbols),
	}

	for i := 0; i < count; i++ {
		resp, err := svc.Generate(req)
		if err != nil {
			return err
		}
		if showScore {
			fmt.Printf("%s\t%s (%d/100)\n", resp.Password, resp.Strength.Label, resp.Strength.Score)
		} else {
			fmt.Println(resp.Password)
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

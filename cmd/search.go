package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/email"
	"github.com/hrscout/hrscout/internal/logger"
	"github.com/hrscout/hrscout/internal/match"
	"github.com/hrscout/hrscout/internal/query"
	"github.com/hrscout/hrscout/internal/search"
)

const (
	PromptSaveShortlist   = "Save results as a shortlist"
	PromptDraftEmail      = "Draft an outreach email"
	PromptRecommendations = "Show job recommendations"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSaveShortlist, PromptDraftEmail, PromptRecommendations, PromptExit},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search candidates with a plain language query",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("interactive", "i", false, "prompt for follow-up actions after showing results")
	searchCmd.Flags().IntP("limit", "n", 0, "maximum number of results, overriding the query text")
}

// applyLimitOverride replaces the parsed limit when the flag was set
// explicitly. The flag default is never applied.
func applyLimitOverride(cmd *cobra.Command, filter *query.Filter) {
	if !cmd.Flags().Changed("limit") {
		return
	}
	if limit, err := cmd.Flags().GetInt("limit"); err == nil {
		filter.Limit = &limit
	}
}

func runSearch(cmd *cobra.Command, text string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := corpus.Load(config.DataDir)
	if err != nil {
		logger.Fatal("loading candidate data", zap.Error(err), zap.String("data-dir", config.DataDir))
	}

	filter := query.Parse(text)
	applyLimitOverride(cmd, &filter)
	logger.Debug("parsed query",
		zap.String("role", filter.Role),
		zap.Strings("skills", filter.Skills),
		zap.String("location", filter.Location),
		zap.Int("limit", filter.EffectiveLimit()),
	)

	results := search.New(store).Search(filter)
	if len(results) == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates in the data set"))
		return
	}

	printResults(results)

	if cmd.Flag("interactive").Value.String() == "false" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, store, results, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, store *corpus.Store, results []search.Result, logger *zap.Logger) error {
	switch action {
	case PromptSaveShortlist:
		return saveShortlist(store, results, logger)
	case PromptDraftEmail:
		return draftEmail(results)
	case PromptRecommendations:
		printRecommendations(results)
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func saveShortlist(store *corpus.Store, results []search.Result, logger *zap.Logger) error {
	namePrompt := promptui.Prompt{
		Label: "Shortlist name",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("name must not be empty")
			}
			return nil
		},
	}

	name, err := namePrompt.Run()
	if err != nil {
		return err
	}

	indices := make([]int, 0, len(results))
	for _, r := range results {
		indices = append(indices, r.Index)
	}

	if !store.SaveShortlist(name, indices) {
		return fmt.Errorf("saving shortlist %q failed", name)
	}

	logger.Info("shortlist saved", zap.String("name", name), zap.Int("candidates", len(indices)))
	return nil
}

func draftEmail(results []search.Result) error {
	tonePrompt := promptui.Select{
		Label: "Tone",
		Items: []string{email.ToneFriendly, email.ToneProfessional},
	}

	_, tone, err := tonePrompt.Run()
	if err != nil {
		return err
	}

	titlePrompt := promptui.Prompt{
		Label:   "Job title",
		Default: email.DefaultJobTitle,
	}

	jobTitle, err := titlePrompt.Run()
	if err != nil {
		return err
	}

	recipients := make([]corpus.Candidate, 0, len(results))
	for _, r := range results {
		recipients = append(recipients, r.Candidate)
	}

	msg := email.Draft(recipients, jobTitle, tone)

	fmt.Println(titleStyle.Render("Subject: " + msg.Subject))
	fmt.Println(msg.Text)
	return nil
}

func printResults(results []search.Result) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Found %d candidates", len(results))))

	for i, r := range results {
		fmt.Printf("%s %s\n",
			labelStyle.Render(fmt.Sprintf("%d. %s", i+1, r.Candidate.FullName())),
			valueStyle.Render(fmt.Sprintf("(%s, %d years)", r.Candidate.Location, r.Candidate.ExperienceYears)),
		)
		fmt.Printf("   %s %s\n", labelStyle.Render("Skills:"), valueStyle.Render(strings.Join(r.Candidate.Skills, ", ")))
		fmt.Printf("   %s %s\n", labelStyle.Render("Why:"), valueStyle.Render(r.Reason))
	}
}

func printRecommendations(results []search.Result) {
	for _, r := range results {
		fmt.Println(titleStyle.Render(r.Candidate.FullName()))

		if len(r.RecommendedJobs) == 0 {
			fmt.Println(valueStyle.Render("   no matching jobs"))
			continue
		}

		for _, rec := range r.RecommendedJobs {
			fmt.Printf("   %s %s\n",
				labelStyle.Render(rec.Job.Title),
				valueStyle.Render(describeRecommendation(rec)),
			)
		}
	}
}

func describeRecommendation(rec match.Recommendation) string {
	parts := []string{fmt.Sprintf("score %d", rec.MatchScore)}
	if len(rec.MatchedSkills) > 0 {
		parts = append(parts, "skills: "+strings.Join(rec.MatchedSkills, ", "))
	}
	if rec.LocationMatch {
		parts = append(parts, "same location")
	}
	return strings.Join(parts, " / ")
}

package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hrscout/hrscout/internal/analytics"
	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/logger"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize the candidate pipeline and the job market",
	Run: func(_ *cobra.Command, _ []string) {
		runAnalytics()
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics() {
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

	report := analytics.Summarize(store.Candidates(), store.Jobs())

	fmt.Println(titleStyle.Render("Pipeline"))
	for stage, count := range report.CountByStage {
		fmt.Printf("   %s %s\n", labelStyle.Render(stage+":"), valueStyle.Render(fmt.Sprintf("%d", count)))
	}

	fmt.Println(titleStyle.Render("Top skills"))
	for _, sc := range report.TopSkills {
		fmt.Printf("   %s %s\n", labelStyle.Render(sc.Skill+":"), valueStyle.Render(fmt.Sprintf("%d", sc.Count)))
	}

	fmt.Println(titleStyle.Render("Job market"))
	fmt.Printf("   %s %s\n", labelStyle.Render("Jobs:"), valueStyle.Render(fmt.Sprintf("%d", report.JobStats.TotalJobs)))
	for location, count := range report.JobStats.LocationBreakdown {
		fmt.Printf("   %s %s\n", labelStyle.Render(location+":"), valueStyle.Render(fmt.Sprintf("%d", count)))
	}

	fmt.Println(titleStyle.Render("Skills analysis"))
	fmt.Printf("   %s %s\n", labelStyle.Render("In demand:"), valueStyle.Render(strings.Join(report.SkillsAnalysis.InDemand, ", ")))
	fmt.Printf("   %s %s\n", labelStyle.Render("Gap:"), valueStyle.Render(strings.Join(report.SkillsAnalysis.Gap, ", ")))
	fmt.Printf("   %s %s\n", labelStyle.Render("Surplus:"), valueStyle.Render(strings.Join(report.SkillsAnalysis.Surplus, ", ")))
}

package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hrscout/hrscout/internal/api"
	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the candidate search API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", defaultListen, "address to listen on")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hrscout api", zap.String("version", version))

	store, err := corpus.Load(config.DataDir)
	if err != nil {
		logger.Fatal("loading candidate data", zap.Error(err), zap.String("data-dir", config.DataDir))
	}

	logger.Info("loaded candidate data",
		zap.Int("candidates", len(store.Candidates())),
		zap.Int("jobs", len(store.Jobs())),
	)

	if err := api.New(store, logger).Listen(config.Listen); err != nil {
		logger.Fatal("api server stopped", zap.Error(err))
	}
}

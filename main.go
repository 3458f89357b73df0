package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/karigane/bookscan/catalog"
	"github.com/karigane/bookscan/config"
	"github.com/karigane/bookscan/log"
	"github.com/karigane/bookscan/notion"
	"github.com/karigane/bookscan/pipeline"
	"github.com/karigane/bookscan/server"
	"github.com/karigane/bookscan/store"
	"github.com/karigane/bookscan/store/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	host       string
	port       int

	rootCmd = &cobra.Command{
		Use:   "bookscan",
		Short: "Bookscan looks up books by ISBN and files them in a Notion reading tracker",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine, env vars may come from the platform.
			_ = godotenv.Load()

			var err error
			if configFile != "" {
				config.GetDefaultOptions()
				_, err = config.ParseFile(configFile)
			} else {
				_, err = config.GetConfig()
			}
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("host") {
				config.Opts.Host = host
			}
			if cmd.Flags().Changed("port") {
				config.Opts.Port = port
			}

			log.Logger = log.NewLogger()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			journalDB, err := db.NewDB(config.Opts.DSN)
			if err != nil {
				log.Error("Error opening journal database", zap.Error(err))
				return
			}
			defer journalDB.Close()
			if err := journalDB.Migrate(ctx); err != nil {
				log.Error("Error migrating journal database", zap.Error(err))
				return
			}

			journal := store.NewStore(journalDB.DB)
			if err := journal.Ping(); err != nil {
				log.Error("Error pinging journal database", zap.Error(err))
				return
			}

			if !config.Opts.NotionConfigured() {
				log.Warn("Notion credentials not configured, submissions will be refused")
			}

			catalogClient := catalog.NewClient(config.Opts.CatalogBaseURL, config.Opts.CatalogAPIKey)
			notionClient := notion.NewClient(config.Opts.NotionBaseURL, config.Opts.NotionToken, config.Opts.NotionDatabaseID)
			processor := pipeline.NewProcessor(catalogClient, notionClient, notion.DefaultSchema())
			processor.AttachJournal(journal)

			s, err := server.StartServer(ctx, journal, processor)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig

			log.Info("Shutting down")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down server", zap.Error(err))
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "host to listen on")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "port to listen on")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Logger.Sync()
}

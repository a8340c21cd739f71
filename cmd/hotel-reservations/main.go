package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/username/hotel-reservations/internal/advisor"
	"github.com/username/hotel-reservations/internal/config"
	"github.com/username/hotel-reservations/internal/hoteldb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hotel-reservations",
		Short:         "Cheapest hotel finder",
		Long:          "Pick the cheapest hotel for every booking line, preferring better rated hotels on equal prices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; its values feed the HOTELS_* overrides
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}

			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger, err = initLogger(cfg.Log.Level)
			}
			if err != nil {
				return err
			}

			logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(answerCmd())
	rootCmd.AddCommand(checkDBCmd())

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func answerCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "answer [db-file] <input-file>",
		Short: "Print the hotel to book for every line of the input file",
		Long: "Print the hotel to book for every line of the input file.\n\n" +
			"db-file is a YAML or JSON hotel database (default: database.path from config).\n" +
			"input-file holds one booking per line, e.g. 'Rewards: 16Mar2009(mon), 17Mar2009(tues)'.\n" +
			"Use '-' to read bookings from stdin.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, inputPath := cfg.Database.Path, args[0]
			if len(args) == 2 {
				dbPath, inputPath = args[0], args[1]
			}
			if outputPath == "" {
				outputPath = cfg.Output.Path
			}

			db, err := hoteldb.NewLoader(logger).Load(dbPath)
			if err != nil {
				return err
			}

			input, closeInput, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer closeInput()

			output, closeOutput, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOutput()

			logger.Info("Answering bookings",
				zap.String("database", dbPath),
				zap.String("input", inputPath),
				zap.String("output", outputPath))

			return advisor.New(db, logger).Answers(input, output)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write answers to file instead of stdout")

	return cmd
}

func checkDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-db [db-file]",
		Short: "Validate a hotel database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := cfg.Database.Path
			if len(args) == 1 {
				dbPath = args[0]
			}

			db, err := hoteldb.NewLoader(logger).Load(dbPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d hotel(s) OK\n", dbPath, len(db))
			for _, h := range db {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s rating %d  regular %d/%d  rewards %d/%d\n",
					h.Name, h.Rating,
					h.Rates.Regular.Weekday, h.Rates.Regular.Weekend,
					h.Rates.Rewards.Weekday, h.Rates.Rewards.Weekend)
			}

			return nil
		},
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open input file at '%s' for reading: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func initLogger(level string) (*zap.Logger, error) {
	zapLevel, err := (&config.LogConfig{Level: level}).GetLevel()
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLevel, err := (&config.LogConfig{Level: level}).GetLevel()
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

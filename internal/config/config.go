package config

import (
	"os"
	"path/filepath"
	"strconv"

	"drs-mcp/internal/simulation"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// SimDefaults holds the run-shape defaults: how many paths, which severity
// grid, and the base RNG seed. Individual tool calls and CLI flags can
// override each value per invocation.
type SimDefaults struct {
	BaseSeverity float64
	Paths        int
	SweepStart   float64
	SweepEnd     float64
	SweepSteps   int
	SweepPaths   int
	Seed         int64
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Model               simulation.Params
	Sim                 SimDefaults
	DataPath            string
	LogDir              string
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables,
// validating the model parameters before anything can run on them.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data path for CSV output
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	model := modelFromEnv()
	if err := model.Validate(); err != nil {
		return nil, err
	}

	basePaths := getEnvInt("SIM_PATHS", 3000)
	cfg := &AppConfig{
		Model: model,
		Sim: SimDefaults{
			BaseSeverity: getEnvFloat("SIM_BASE_SEVERITY", 0.20),
			Paths:        basePaths,
			SweepStart:   getEnvFloat("SIM_SWEEP_START", 0.05),
			SweepEnd:     getEnvFloat("SIM_SWEEP_END", 0.35),
			SweepSteps:   getEnvInt("SIM_SWEEP_STEPS", 7),
			// Grid points run at half the base path count for speed.
			SweepPaths: getEnvInt("SIM_SWEEP_PATHS", basePaths/2),
			Seed:       int64(getEnvInt("SIM_SEED", 42)),
		},
		DataPath:            dataPath,
		LogDir:              logDir,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	if err := simulation.ValidateSeverity(cfg.Sim.BaseSeverity); err != nil {
		return nil, err
	}

	return cfg, nil
}

func modelFromEnv() simulation.Params {
	p := simulation.DefaultParams()
	p.HorizonYears = getEnvInt("MODEL_HORIZON_YEARS", p.HorizonYears)
	p.InitialRevenue = getEnvFloat("MODEL_INITIAL_REVENUE", p.InitialRevenue)
	p.BaseGrowth = getEnvFloat("MODEL_BASE_GROWTH", p.BaseGrowth)
	p.GrowthVol = getEnvFloat("MODEL_GROWTH_VOL", p.GrowthVol)
	p.InitialMargin = getEnvFloat("MODEL_INITIAL_MARGIN", p.InitialMargin)
	p.MarginVol = getEnvFloat("MODEL_MARGIN_VOL", p.MarginVol)
	p.Debt = getEnvFloat("MODEL_DEBT", p.Debt)
	p.InterestRate = getEnvFloat("MODEL_INTEREST_RATE", p.InterestRate)
	p.FixedCostIntensity = getEnvFloat("MODEL_FIXED_COST_INTENSITY", p.FixedCostIntensity)
	p.LeakProb = getEnvFloat("MODEL_LEAK_PROBABILITY", p.LeakProb)
	p.DetectionLagYears = getEnvInt("MODEL_DETECTION_LAG_YEARS", p.DetectionLagYears)
	p.Mitigation = getEnvFloat("MODEL_MITIGATION", p.Mitigation)
	p.CoverageThreshold = getEnvFloat("MODEL_COVERAGE_THRESHOLD", p.CoverageThreshold)
	p.LeverageThreshold = getEnvFloat("MODEL_LEVERAGE_THRESHOLD", p.LeverageThreshold)
	p.ConsecutiveYears = getEnvInt("MODEL_CONSECUTIVE_YEARS", p.ConsecutiveYears)
	p.DowngradeWindow = getEnvInt("MODEL_DOWNGRADE_WINDOW", p.DowngradeWindow)
	return p
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

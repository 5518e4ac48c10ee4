// Package config holds the settings shared by every command. Values come from
// flags, GOLAY_* environment variables and an optional config file, in that order.
package config

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GOLAY"

type Config struct {
	Verbose bool
	LogFile string `mapstructure:"log-file"`
	Seed    int64
	Threads int
}

var current Config

func init() {
	viper.SetDefault("chart-title", "Results")
	viper.SetDefault("log-timestamp-format", "Jan _2 2006 15:04:05.000000")
}

// Load binds the running command's flags, reads configFile when given and
// applies the result: log level, log file and the random seed.
func Load(flags *pflag.FlagSet, configFile string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.BindPFlags(flags)
	if err != nil {
		return err
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
		err = viper.ReadInConfig()
		if err != nil {
			return fmt.Errorf("error reading config file %v: %w", configFile, err)
		}
	}

	var c Config
	err = viper.Unmarshal(&c)
	if err != nil {
		return err
	}
	current = c

	SetupLogging(c.Verbose, c.LogFile)

	if c.Seed != 0 {
		rand.Seed(c.Seed)
	} else {
		//we seed the randomizer so we get something different every time
		rand.Seed(time.Now().UnixNano())
	}

	if configFile != "" {
		logrus.Debugf("config loaded from %v: %v", configFile, viper.AllSettings())
	}
	return nil
}

func Current() Config {
	return current
}

// Threads returns the configured thread count, 0 means one per cpu.
func Threads() int {
	if current.Threads <= 0 {
		return runtime.NumCPU()
	}
	return current.Threads
}

// SetupLogging sets the level and when logFile is given also writes every entry
// at that level or above to logFile as JSON.
func SetupLogging(verbose bool, logFile string) {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	if logFile == "" {
		return
	}

	pathMap := lfshook.PathMap{}
	for _, l := range logrus.AllLevels {
		if l <= level {
			pathMap[l] = logFile
		}
	}
	hook := lfshook.NewHook(
		pathMap,
		&logrus.JSONFormatter{
			TimestampFormat: viper.GetString("log-timestamp-format"),
		},
	)
	logrus.AddHook(hook)
}

// SignalContext returns a context that is cancelled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}

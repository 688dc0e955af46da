package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hades-platform/field-simulators/external/hades"
	"github.com/hades-platform/field-simulators/simulator"
	"github.com/hades-platform/field-simulators/utils"
)

const logPrefix = "drone-simulation"

func fatal(msg string, err error) {
	log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error(msg)
	utils.ReportFatal(err)
	os.Exit(1)
}

func main() {
	var (
		configFile   string
		earthquakeID string
		interval     int
	)

	flags := flag.NewFlagSet(logPrefix, flag.ContinueOnError)
	flags.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flags.StringVar(&earthquakeID, "earthquake-id", "", "[required] id of the earthquake the images belong to")
	flags.IntVar(&interval, "interval", 2000, "[optional] milliseconds to wait between uploads")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	utils.LoadConfig(configFile)
	utils.InitLog()
	utils.InitSentry()

	if earthquakeID == "" {
		fmt.Fprintln(os.Stderr, "required flag --earthquake-id not specified")
		flags.Usage()
		os.Exit(1)
	}

	id, err := uuid.Parse(earthquakeID)
	if err != nil {
		fatal("invalid earthquake id", err)
	}

	// the flag wins only when given explicitly
	intervalSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "interval" {
			intervalSet = true
		}
	})
	if !intervalSet {
		interval = viper.GetInt("drone.interval")
	}
	if interval < 0 {
		fatal("invalid interval", fmt.Errorf("interval must not be negative: %d", interval))
	}

	ctx, cancel := utils.InterruptContext()
	defer cancel()

	httpClient := utils.NewHTTPClient()

	token, err := utils.SessionToken(ctx, httpClient, viper.GetString("drone.actor"), viper.GetString("drone.role"))
	if err != nil {
		fatal("authentication failed", err)
	}
	log.WithField("prefix", logPrefix).Info("authenticated")

	imagesDir := viper.GetString("drone.images_dir")
	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"earthquake":  id,
		"api":         viper.GetString("api.url"),
		"images_dir":  imagesDir,
		"interval_ms": interval,
	}).Info("starting drone simulation")

	metrics := utils.NewMetricsScope(logPrefix)
	sim := simulator.NewDroneSimulation(
		hades.New(viper.GetString("api.url"), token, httpClient),
		utils.NewRand(viper.GetInt64("simulation.seed")),
		metrics,
		simulator.DroneConfig{
			EarthquakeID: id,
			ImagesDir:    imagesDir,
			Interval:     time.Duration(interval) * time.Millisecond,
			Neighborhood: viper.GetString("drone.neighborhood"),
		},
	)

	summary, err := sim.Run(ctx)
	utils.LogMetrics(logPrefix, metrics)
	if err != nil {
		if summary.Total > 0 {
			logSummary(summary)
		}
		fatal("drone simulation failed", err)
	}

	logSummary(summary)
}

func logSummary(s simulator.Summary) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"success": s.Succeeded,
		"failed":  s.Failed,
		"total":   s.Total,
	}).Info("simulation completed")
}

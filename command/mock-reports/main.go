package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hades-platform/field-simulators/external/hades"
	"github.com/hades-platform/field-simulators/report"
	"github.com/hades-platform/field-simulators/simulator"
	"github.com/hades-platform/field-simulators/utils"
)

const logPrefix = "mock-reports"

func fatal(msg string, err error) {
	log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error(msg)
	utils.ReportFatal(err)
	os.Exit(1)
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	utils.LoadConfig(configFile)
	utils.InitLog()
	utils.InitSentry()

	ctx, cancel := utils.InterruptContext()
	defer cancel()

	httpClient := utils.NewHTTPClient()

	token, err := utils.SessionToken(ctx, httpClient, viper.GetString("report.actor"), viper.GetString("report.role"))
	if err != nil {
		fatal("authentication failed", err)
	}
	log.WithField("prefix", logPrefix).Info("authenticated")

	lang := viper.GetString("report.lang")
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"api":    viper.GetString("api.url"),
		"lang":   lang,
	}).Info("starting mock report generation")

	metrics := utils.NewMetricsScope(logPrefix)
	gen := simulator.NewReportGeneration(
		hades.New(viper.GetString("api.url"), token, httpClient),
		report.NewSynthesizer(utils.NewRand(viper.GetInt64("simulation.seed")), lang),
		metrics,
		viper.GetDuration("report.delay"),
	)

	summary, err := gen.Run(ctx)
	utils.LogMetrics(logPrefix, metrics)
	if summary.Total > 0 {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"success": summary.Succeeded,
			"failed":  summary.Failed,
			"total":   summary.Total,
		}).Info("mock report generation completed")
	}

	if err != nil {
		fatal("mock report generation failed", err)
	}
}

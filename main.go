package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"

	"air_balance_calc/airbalance"
)

func main() {
	parser := argparse.NewParser("air_balance_calc", "Computes the moist air state and the mass/energy/CO2 balance across a fixed resin bed")

	stationsPath := parser.String("s", "stations", &argparse.Options{
		Required: true,
		Help:     "station readings CSV (one inlet and one outlet row)"})

	configPath := parser.String("c", "config", &argparse.Options{
		Required: true,
		Help:     "site and bed geometry INI file"})

	outputPath := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "write the report to this file instead of stdout"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	geometry, err := load_geometry(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("geometry loaded: %s", *configPath)

	inlet, outlet, err := read_stations(*stationsPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("station readings loaded: %s", *stationsPath)

	report, err := airbalance.BuildReport(inlet, outlet, geometry)
	if err != nil {
		logrus.Fatalf("balance computation failed: %v", err)
	}
	logrus.Infof("balance computed: %s (%g mg/s)", report.Balance.CO2Label, report.Balance.CO2Change)

	text := format_report(report, geometry)
	if *outputPath == "" {
		fmt.Print(text)
	} else {
		if err := os.WriteFile(*outputPath, []byte(text), 0644); err != nil {
			logrus.Fatal(err)
		}
		logrus.Infof("report saved: %s", *outputPath)
	}
}

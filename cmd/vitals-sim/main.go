package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	baseURL  string
	interval time.Duration
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "vitals-sim",
		Short: "Posts synthetic monitor readings to a vitals server",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "base URL of the vitals server")
	root.PersistentFlags().DurationVar(&interval, "interval", time.Second, "delay between measurement posts")

	root.AddCommand(
		bpCmd(log),
		spo2Cmd(log),
		tempCmd(log),
		runCmd(log),
	)

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("simulator failed")
	}
}

func newClient() *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")
}

type payload struct {
	Value string `json:"value"`
}

func post(client *resty.Client, log zerolog.Logger, path, value string) error {
	resp, err := client.R().SetBody(payload{Value: value}).Post(path)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Str("value", value).Int("status", resp.StatusCode()).Msg("sent")
	return nil
}

func randomBP() string {
	systolic := rand.Intn(21) + 110 // 110-130
	diastolic := rand.Intn(16) + 70 // 70-85
	return fmt.Sprintf("%d/%d", systolic, diastolic)
}

func randomSpO2Value() string {
	spo2 := rand.Intn(4) + 96 // 96-99
	bpm := rand.Intn(30) + 65 // 65-94
	return fmt.Sprintf("SpO2 : %d%%, BPM : %d", spo2, bpm)
}

// jittered spreads an interval by ±20%.
func jittered(d time.Duration) time.Duration {
	f := 0.8 + rand.Float64()*0.4
	return time.Duration(float64(d) * f)
}

func randomTempValue() string {
	celsius := 36.1 + rand.Float64()*1.4
	return fmt.Sprintf("Temp : %.1f°C", celsius)
}

// sendBPCycle mimics a cuff measurement: a run of in-progress readings
// followed by a single final result.
func sendBPCycle(client *resty.Client, log zerolog.Logger) error {
	for i := 0; i < 10; i++ {
		if err := post(client, log, "/api/data", "On going : "+randomBP()); err != nil {
			return err
		}
		time.Sleep(interval)
	}
	final := randomBP()
	bpm := rand.Intn(30) + 65
	return post(client, log, "/api/data", fmt.Sprintf("Result : %s, BPM : %d", final, bpm))
}

func bpCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "bp",
		Short: "Send one blood pressure measurement cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendBPCycle(newClient(), log)
		},
	}
}

func spo2Cmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "spo2",
		Short: "Send one pulse oximeter reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			return post(newClient(), log, "/api/spo2", randomSpO2Value())
		},
	}
}

func tempCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "temp",
		Short: "Send one thermometer reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			return post(newClient(), log, "/api/temp", randomTempValue())
		},
	}
}

func runCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Continuously send readings from all simulated devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			// Jitter keeps the channels from always landing in lockstep.
			spo2Timer := time.NewTimer(jittered(interval))
			defer spo2Timer.Stop()
			tempTick := time.NewTicker(30 * time.Second)
			defer tempTick.Stop()
			bpTick := time.NewTicker(time.Minute)
			defer bpTick.Stop()

			log.Info().Str("url", baseURL).Msg("simulator running, Ctrl-C to stop")
			for {
				select {
				case <-spo2Timer.C:
					if err := post(client, log, "/api/spo2", randomSpO2Value()); err != nil {
						log.Warn().Err(err).Msg("spo2 send failed")
					}
					spo2Timer.Reset(jittered(interval))
				case <-tempTick.C:
					if err := post(client, log, "/api/temp", randomTempValue()); err != nil {
						log.Warn().Err(err).Msg("temp send failed")
					}
				case <-bpTick.C:
					if err := sendBPCycle(client, log); err != nil {
						log.Warn().Err(err).Msg("bp cycle failed")
					}
				case <-stop:
					log.Info().Msg("simulator stopped")
					return nil
				}
			}
		},
	}
}

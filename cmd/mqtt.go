// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Thermoquad/daikinir/pkg/config"
	"github.com/Thermoquad/daikinir/pkg/remote"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	mqttBroker   string
	mqttPrefix   string
	mqttClientID string
	mqttUser     string
	mqttOutput   string
	mqttFormat   string
)

var mqttCmd = &cobra.Command{
	Use:   "mqtt",
	Short: "Bridge settings changes from an MQTT broker",
	Long: `Connect to an MQTT broker and apply settings published to <prefix>/set.

Messages on <prefix>/set are JSON objects with any of the fields power, fan,
swing, temperature, mode and delay; fields not present keep their current
value. After each change the full settings are published (retained) to
<prefix>/state. Rejected changes are reported on <prefix>/error.

The broker password is read from the DAIKIN_MQTT_PASSWORD environment
variable. Output goes to --port or --url when given, otherwise to --output.`,
	Args: cobra.NoArgs,
	RunE: runMqtt,
}

func init() {
	rootCmd.AddCommand(mqttCmd)
	mqttCmd.Flags().StringVar(&mqttBroker, "broker", "tcp://localhost:1883", "MQTT broker URL")
	mqttCmd.Flags().StringVar(&mqttPrefix, "prefix", "daikin", "Topic prefix")
	mqttCmd.Flags().StringVar(&mqttClientID, "client-id", "daikinir", "MQTT client ID")
	mqttCmd.Flags().StringVar(&mqttUser, "mqtt-username", "", "MQTT username")
	mqttCmd.Flags().StringVarP(&mqttOutput, "output", "o", remote.DefaultOutputPath, "Pulse file to write")
	mqttCmd.Flags().StringVar(&mqttFormat, "format", "", "Output format (text, raw, cbor)")
}

// mqttMessage is one outgoing publication
type mqttMessage struct {
	topic    string
	retained bool
	payload  []byte
}

// handleSetMessage applies a <prefix>/set payload and returns what to
// publish in response.
func handleSetMessage(r *remote.Remote, prefix string, payload []byte) []mqttMessage {
	var o config.Overrides
	if err := json.Unmarshal(payload, &o); err != nil {
		log.WithError(err).Warn("MQTT: invalid set payload")
		return []mqttMessage{{topic: prefix + "/error", payload: []byte(fmt.Sprintf("invalid JSON: %v", err))}}
	}

	res, err := r.Apply(o)
	if err != nil {
		log.WithError(err).Warn("MQTT: settings rejected")
		return []mqttMessage{{topic: prefix + "/error", payload: []byte(err.Error())}}
	}

	state, err := json.Marshal(res.Settings)
	if err != nil {
		log.WithError(err).Error("MQTT: failed to encode state")
		return nil
	}
	return []mqttMessage{{topic: prefix + "/state", retained: true, payload: state}}
}

// mqttPublishTimeout bounds the wait for each publish token
const mqttPublishTimeout = 5 * time.Second

// mqttPublisher is the part of mqtt.Client used for publishing
type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// publishMessages publishes msgs in order and returns the last failure.
// Failures are logged and do not stop later messages.
func publishMessages(p mqttPublisher, msgs []mqttMessage) error {
	var lastErr error
	for _, m := range msgs {
		log.Infof("MQTT PUB: %s -> %s", m.topic, m.payload)
		token := p.Publish(m.topic, 0, m.retained, m.payload)
		if !token.WaitTimeout(mqttPublishTimeout) {
			lastErr = fmt.Errorf("publish to %s timed out", m.topic)
			log.Warnf("MQTT: %v", lastErr)
			continue
		}
		if err := token.Error(); err != nil {
			lastErr = fmt.Errorf("publish to %s failed: %w", m.topic, err)
			log.WithError(err).Warnf("MQTT: publish to %s failed", m.topic)
		}
	}
	return lastErr
}

func runMqtt(cmd *cobra.Command, args []string) error {
	sink, sinkInfo, closeSink, err := openSink(mqttOutput, mqttFormat)
	if err != nil {
		return err
	}
	defer closeSink()

	r, err := remote.New(configPath, sink)
	if err != nil {
		return err
	}

	opts := mqtt.NewClientOptions().
		AddBroker(mqttBroker).
		SetClientID(mqttClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)
	if mqttUser != "" {
		opts.SetUsername(mqttUser)
		opts.SetPassword(os.Getenv("DAIKIN_MQTT_PASSWORD"))
	}

	setTopic := mqttPrefix + "/set"
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Infof("MQTT: connected to %s", mqttBroker)
		token := client.Subscribe(setTopic, 1, func(client mqtt.Client, msg mqtt.Message) {
			log.Debugf("MQTT SUB: %s <- %s", msg.Topic(), msg.Payload())
			publishMessages(client, handleSetMessage(r, mqttPrefix, msg.Payload()))
		})
		if token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).Errorf("MQTT: subscribe to %s failed", setTopic)
		}
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.WithError(err).Warn("MQTT: connection lost")
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connection failed: %w", token.Error())
	}
	defer client.Disconnect(250)

	// Publish the starting state so subscribers see it straight away
	if state, err := json.Marshal(r.Settings()); err == nil {
		publishMessages(client, []mqttMessage{{topic: mqttPrefix + "/state", retained: true, payload: state}})
	}

	fmt.Printf("daikinir - MQTT bridge\n")
	fmt.Printf("Broker: %s\n", mqttBroker)
	fmt.Printf("Topics: %s, %s/state\n", setTopic, mqttPrefix)
	fmt.Printf("Output: %s\n", sinkInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	return nil
}

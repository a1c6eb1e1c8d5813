package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/event-builder-go/envelope"
	"github.com/AntonStoeckl/event-builder-go/event"
	"github.com/AntonStoeckl/event-builder-go/internal/config"
	"github.com/AntonStoeckl/event-builder-go/internal/logging"
)

const (
	introduction = "Introducing Builder patterns!..."

	demoID   event.IDInt64    = 122
	demoName event.NameString = "Suman"
)

var ErrUnknownOutputFormat = errors.New("unknown output format")

type outputFormat = string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

type dependencies struct {
	loadConfig func() (config.Config, error)
	now        func() time.Time
}

type options struct {
	output   outputFormat
	envelope bool
}

func newRootCmd(deps dependencies) *cobra.Command {
	var (
		opts     options
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "eventbuilder",
		Short:         "Build an event with the Builder pattern and print its name",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := deps.loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				if cfg.LogLevel, err = config.ParseLogLevel(logLevel); err != nil {
					return err
				}
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg)

			return run(cmd.Context(), opts, cmd.OutOrStdout(), logger, deps.now)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.envelope, "envelope", false, "wrap the event in an envelope with metadata")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides "+config.EnvLogLevel+")")

	return cmd
}

// envelopeView is the printable form of an envelope.EventEnvelope.
type envelopeView struct {
	EventType  string                 `json:"eventType" yaml:"eventType"`
	OccurredAt time.Time              `json:"occurredAt" yaml:"occurredAt"`
	Event      event.Event            `json:"event" yaml:"event"`
	Metadata   envelope.EventMetadata `json:"metadata" yaml:"metadata"`
}

func run(ctx context.Context, opts options, out io.Writer, logger *slog.Logger, now func() time.Time) error {
	switch opts.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, opts.output)
	}

	e := event.BuildEvent().
		WithID(demoID).
		WithName(demoName).
		Build()

	logger.DebugContext(ctx, "event built", "id", e.ID(), "name", e.Name())

	var document any = e

	if opts.envelope {
		eventEnvelope, err := wrap(e, now())
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "event wrapped", "messageID", eventEnvelope.EventMetadata.MessageID)

		document = envelopeView{
			EventType:  envelope.EventType,
			OccurredAt: eventEnvelope.OccurredAt,
			Event:      eventEnvelope.Event,
			Metadata:   eventEnvelope.EventMetadata,
		}
	}

	switch opts.output {
	case outputJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(document, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(data))

		return err

	case outputYAML:
		data, err := yaml.Marshal(document)
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err

	default:
		if _, err := fmt.Fprintln(out, introduction); err != nil {
			return err
		}

		_, err := fmt.Fprintln(out, e.Name())

		return err
	}
}

// wrap round-trips the event through a StorableEvent, the way it would travel to a store or broker.
func wrap(e event.Event, occurredAt time.Time) (envelope.EventEnvelope, error) {
	storableEvent, err := envelope.StorableEventFrom(e, envelope.NewEventMetadata(), occurredAt)
	if err != nil {
		return envelope.EventEnvelope{}, err
	}

	return envelope.EventEnvelopeFrom(storableEvent)
}

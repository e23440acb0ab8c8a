// Package inspect decodes captured Assistant v2 payloads and reports which
// variant every discriminated member resolved to.
package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tjfontaine/watson-assistant/pkg/assistantv2"
	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

const tracerName = "github.com/tjfontaine/watson-assistant/internal/inspect"

// Item is one discriminated member found in a payload.
type Item struct {
	Path   string `json:"path" yaml:"path"`
	Family string `json:"family" yaml:"family"`
	Tag    string `json:"tag" yaml:"tag"`
	Known  bool   `json:"known" yaml:"known"`
	Raw    string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Report is the result of inspecting one payload.
type Report struct {
	Source  string `json:"source" yaml:"source"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Items   []Item `json:"items" yaml:"items"`
	Unknown int    `json:"unknown" yaml:"unknown"`

	// Error is set when the payload could not be decoded. ErrorField is the
	// path of the offending member for decode errors.
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorField string `json:"error_field,omitempty" yaml:"error_field,omitempty"`

	// Invalid is set when a decoded request-side model fails validation.
	Invalid string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Failed reports whether the payload could not be decoded.
func (r *Report) Failed() bool { return r.Error != "" }

// Options tune an Inspector.
type Options struct {
	// ShowRaw keeps the raw JSON of members that fell back to a base shape.
	ShowRaw bool
}

// Inspector decodes payloads. It is safe for concurrent use.
type Inspector struct {
	logger *slog.Logger
	tracer trace.Tracer
	opts   Options
}

func New(logger *slog.Logger, opts Options) *Inspector {
	return &Inspector{
		logger: logger,
		tracer: otel.Tracer(tracerName),
		opts:   opts,
	}
}

// Inspect decodes src as kind, detecting the kind first when it is KindAuto.
func (i *Inspector) Inspect(ctx context.Context, src Source, kind Kind) *Report {
	_, span := i.tracer.Start(ctx, "inspect.payload", trace.WithAttributes(
		attribute.String("inspect.source", src.Name),
		attribute.Int("inspect.bytes", len(src.Data)),
	))
	defer span.End()

	if kind == KindAuto {
		kind = Detect(src.Data)
		i.logger.Debug("detected payload kind", slog.String("source", src.Name), slog.String("kind", string(kind)))
	}
	report := &Report{Source: src.Name, Kind: kind, Items: []Item{}}
	span.SetAttributes(attribute.String("inspect.kind", string(kind)))

	w := &walker{showRaw: i.opts.ShowRaw}
	err := w.decode(kind, src.Data)
	report.Items = append(report.Items, w.items...)
	report.Unknown = w.unknown
	if w.invalid != nil {
		report.Invalid = w.invalid.Error()
	}

	if err != nil {
		report.Error = err.Error()
		var de *tagged.DecodeError
		if errors.As(err, &de) {
			report.ErrorField = de.Field
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		i.logger.Warn("payload decode failed",
			slog.String("source", src.Name),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return report
	}

	span.SetAttributes(
		attribute.Int("inspect.items", len(report.Items)),
		attribute.Int("inspect.unknown", report.Unknown),
	)
	i.logger.Info("payload inspected",
		slog.String("source", src.Name),
		slog.String("kind", string(kind)),
		slog.Int("items", len(report.Items)),
		slog.Int("unknown", report.Unknown),
	)
	return report
}

// walker collects the discriminated members of a decoded payload.
type walker struct {
	showRaw bool
	items   []Item
	unknown int
	invalid error
}

func (w *walker) decode(kind Kind, data []byte) error {
	switch kind {
	case KindMessage:
		var resp assistantv2.MessageResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return err
		}
		w.messageResponse("", &resp)
	case KindStatelessMessage:
		var resp assistantv2.StatelessMessageResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return err
		}
		w.output("output", &resp.Output)
		w.output("masked_output", resp.MaskedOutput)
	case KindStream:
		events, err := assistantv2.NewStreamReader(bytes.NewReader(data)).All()
		if err != nil {
			return err
		}
		for n, ev := range events {
			w.streamEvent(fmt.Sprintf("[%d]", n), assistantv2.MessageStreamResponses().Name(), ev)
		}
	case KindStatelessStream:
		events, err := assistantv2.NewStatelessStreamReader(bytes.NewReader(data)).All()
		if err != nil {
			return err
		}
		for n, ev := range events {
			w.streamEvent(fmt.Sprintf("[%d]", n), assistantv2.StatelessMessageStreamResponses().Name(), ev)
		}
	case KindLogs:
		var logs assistantv2.LogCollection
		if err := json.Unmarshal(data, &logs); err != nil {
			return err
		}
		for n := range logs.Logs {
			w.messageResponse(fmt.Sprintf("logs[%d].response.", n), &logs.Logs[n].Response)
		}
	case KindSkill:
		var skill assistantv2.Skill
		if err := json.Unmarshal(data, &skill); err != nil {
			return err
		}
		w.invalid = skill.Validate()
	case KindEnvironment:
		var env assistantv2.Environment
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		for n := range env.SkillReferences {
			if err := env.SkillReferences[n].Validate(); err != nil {
				w.invalid = fmt.Errorf("skill_references[%d]: %w", n, err)
				break
			}
		}
	case KindProvider:
		return w.provider(data)
	default:
		return fmt.Errorf("cannot inspect payload of kind %q", kind)
	}
	return nil
}

func (w *walker) add(path, family, tag string, known bool, raw json.RawMessage) {
	item := Item{Path: path, Family: family, Tag: tag, Known: known}
	if !known {
		w.unknown++
		if w.showRaw {
			item.Raw = string(raw)
		}
	}
	w.items = append(w.items, item)
}

func (w *walker) messageResponse(prefix string, resp *assistantv2.MessageResponse) {
	w.output(prefix+"output", &resp.Output)
	w.output(prefix+"masked_output", resp.MaskedOutput)
}

func (w *walker) output(path string, out *assistantv2.MessageOutput) {
	if out == nil {
		return
	}

	generics := assistantv2.RuntimeResponseGenerics().Name()
	for n, g := range out.Generic {
		_, unknown := g.(*assistantv2.RuntimeResponseGenericBase)
		w.add(fmt.Sprintf("%s.generic[%d]", path, n), generics, g.Base().ResponseType, !unknown, g.Base().RawJSON())
	}

	if out.Debug == nil {
		return
	}
	sources := assistantv2.LogMessageSources().Name()
	for n, m := range out.Debug.LogMessages {
		if m.Source == nil {
			continue
		}
		_, unknown := m.Source.(*assistantv2.LogMessageSourceBase)
		w.add(fmt.Sprintf("%s.debug.log_messages[%d].source", path, n), sources, m.Source.Base().Type, !unknown, m.Source.Base().RawJSON())
	}
	events := assistantv2.TurnEvents().Name()
	for n, ev := range out.Debug.TurnEvents {
		_, unknown := ev.(*assistantv2.TurnEventBase)
		w.add(fmt.Sprintf("%s.debug.turn_events[%d]", path, n), events, ev.Base().Event, !unknown, ev.Base().RawJSON())
	}
}

func (w *walker) streamEvent(path, family string, ev assistantv2.MessageStreamResponse) {
	switch ev := ev.(type) {
	case *assistantv2.MessageStreamPartialItem:
		w.add(path, family, assistantv2.StreamPartialItem, true, nil)
	case *assistantv2.MessageStreamCompleteItem:
		w.add(path, family, assistantv2.StreamCompleteItem, true, nil)
		if item := ev.CompleteItem.Item; item != nil {
			_, unknown := item.(*assistantv2.RuntimeResponseGenericBase)
			w.add(path+".complete_item", assistantv2.RuntimeResponseGenerics().Name(), item.Base().ResponseType, !unknown, item.Base().RawJSON())
		}
	case *assistantv2.MessageStreamFinalResponse:
		w.add(path, family, assistantv2.StreamFinalResponse, true, nil)
		if ev.FinalResponse != nil {
			w.messageResponse(path+".final_response.", ev.FinalResponse)
		}
	case *assistantv2.StatelessMessageStreamFinalResponse:
		w.add(path, family, assistantv2.StreamFinalResponse, true, nil)
		if ev.FinalResponse != nil {
			w.output(path+".final_response.output", &ev.FinalResponse.Output)
			w.output(path+".final_response.masked_output", ev.FinalResponse.MaskedOutput)
		}
	default:
		w.add(path, family, "", false, ev.Base().RawJSON())
	}
}

func (w *walker) provider(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err == nil {
		if _, ok := top["conversational_skill_providers"]; ok {
			var providers assistantv2.ProviderCollection
			if err := json.Unmarshal(data, &providers); err != nil {
				return err
			}
			for n := range providers.ConversationalSkillProviders {
				w.specification(fmt.Sprintf("conversational_skill_providers[%d].specification", n), providers.ConversationalSkillProviders[n].Specification)
			}
			return nil
		}
	}

	var provider assistantv2.ProviderResponse
	if err := json.Unmarshal(data, &provider); err != nil {
		return err
	}
	w.specification("specification", provider.Specification)
	return nil
}

func (w *walker) specification(path string, spec *assistantv2.ProviderSpecification) {
	if spec == nil || spec.Components == nil || spec.Components.SecuritySchemes == nil {
		return
	}
	path += ".components.securitySchemes"

	scheme := spec.Components.SecuritySchemes
	_, unknown := scheme.(*assistantv2.ProviderSecuritySchemeBase)
	w.add(path, assistantv2.ProviderSecuritySchemes().Name(), scheme.Base().AuthenticationMethod, !unknown, scheme.Base().RawJSON())

	oauth2, ok := scheme.(*assistantv2.ProviderSecuritySchemeOAuth2)
	if !ok || oauth2.OAuth2 == nil || oauth2.OAuth2.Flows == nil {
		return
	}
	const flowsFamily = "ProviderAuthenticationOAuth2Flows"
	flowsPath := path + ".oauth2.flows"
	switch flows := oauth2.OAuth2.Flows.(type) {
	case *assistantv2.ProviderAuthenticationOAuth2Password:
		w.add(flowsPath, flowsFamily, assistantv2.OAuth2FlowPassword, true, nil)
	case *assistantv2.ProviderAuthenticationOAuth2ClientCredentials:
		w.add(flowsPath, flowsFamily, assistantv2.OAuth2FlowClientCredentials, true, nil)
	case *assistantv2.ProviderAuthenticationOAuth2AuthorizationCode:
		w.add(flowsPath, flowsFamily, assistantv2.OAuth2FlowAuthorizationCode, true, nil)
	default:
		w.add(flowsPath, flowsFamily, "", false, flows.Base().RawJSON())
	}
}

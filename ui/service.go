// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/rocket-welder/sdk-go/contracts"
	"github.com/rocket-welder/sdk-go/eventbus"
)

// ServiceConfig holds configuration for creating a Service.
type ServiceConfig struct {
	// SessionID scopes the inbound event stream and all outbound
	// commands for one UI-control session. Required.
	SessionID string

	// Bus is the command/event transport. Required.
	Bus eventbus.Bus

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Service is the synchronization engine for one UI-control session.
// It owns the live control index, the per-region collections, and the
// pending-operation queues, and drains all of them inside Tick.
//
// Tick must be called by exactly one goroutine; concurrent ticks on
// the same Service are undefined behavior. Every other method, and
// every method on the controls and regions it hands out, is safe from
// any goroutine.
type Service struct {
	sessionID string
	bus       eventbus.Bus
	logger    *slog.Logger

	factory   *Factory
	scheduler *scheduler
	inbox     *inbox

	// mu guards index and regions. The index is written by
	// Region.Add (any goroutine) and by the tick; lookups during
	// event dispatch take the read lock.
	mu      sync.RWMutex
	index   map[string]Control
	regions map[string]*Region

	subscription eventbus.Subscription
}

// NewService creates a Service and subscribes it to the session's
// inbound event stream. Call Close to release the subscription when
// the session ends.
func NewService(config ServiceConfig) (*Service, error) {
	if config.SessionID == "" {
		return nil, fmt.Errorf("ui: SessionID is required")
	}
	if config.Bus == nil {
		return nil, fmt.Errorf("ui: Bus is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		sessionID: config.SessionID,
		bus:       config.Bus,
		logger:    logger,
		scheduler: newScheduler(),
		inbox:     newInbox(),
		index:     make(map[string]Control),
		regions:   make(map[string]*Region),
	}
	s.factory = &Factory{service: s}

	subscription, err := config.Bus.Subscribe(contracts.EventStream(config.SessionID), s.receive)
	if err != nil {
		return nil, fmt.Errorf("ui: subscribing to session event stream: %w", err)
	}
	s.subscription = subscription
	return s, nil
}

// SessionID returns the session this engine serves.
func (s *Service) SessionID() string { return s.sessionID }

// Factory returns the control constructors bound to this session.
func (s *Service) Factory() *Factory { return s.factory }

// Region returns the collection for the named region, creating it on
// first use. Region names are opaque tags; the constants in package
// contracts cover the stock host layout.
func (s *Service) Region(name string) *Region {
	s.mu.RLock()
	region := s.regions[name]
	s.mu.RUnlock()
	if region != nil {
		return region
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if region := s.regions[name]; region != nil {
		return region
	}
	region = &Region{name: name, service: s}
	s.regions[name] = region
	return region
}

// Enqueue adds an inbound event for dispatch on the next tick. The
// bus subscription feeds this automatically; it is exported for hosts
// that deliver events in-process.
func (s *Service) Enqueue(event contracts.Event) {
	s.inbox.enqueue(event)
}

// Close cancels the session's event subscription. It does not emit
// anything: teardown of the remote side is the host's business.
func (s *Service) Close() {
	if s.subscription != nil {
		s.subscription.Close()
	}
}

// receive is the bus subscription callback. Undecodable envelopes are
// dropped: an unknown event type means the UI host is newer than this
// SDK, which is expected, not an error.
func (s *Service) receive(env eventbus.Envelope) {
	event, err := contracts.DecodeEvent(env.Type, env.Data)
	if err != nil {
		if errors.Is(err, contracts.ErrUnknownEventType) {
			s.logger.Debug("ignoring unknown event type", "type", env.Type, "id", env.ID)
		} else {
			s.logger.Warn("dropping malformed event", "type", env.Type, "id", env.ID, "error", err)
		}
		return
	}
	s.inbox.enqueue(event)
}

// Tick runs one synchronization cycle: dispatch inbound events, send
// definitions, send deletions, send property diffs. Everything
// drained was scheduled strictly before the corresponding drain;
// operations scheduled mid-tick are picked up by the next call.
//
// A transport failure aborts the cycle and is returned to the caller.
// The engine does not retry: redelivery policy belongs to the bus.
func (s *Service) Tick(ctx context.Context) error {
	s.dispatchEvents()
	if err := s.sendDefinitions(ctx); err != nil {
		return err
	}
	if err := s.sendDeletions(ctx); err != nil {
		return err
	}
	return s.sendChanges(ctx)
}

// dispatchEvents drains the inbox and routes each event to its target
// control. An event whose target is not in the live index — not yet
// defined, or already deleted — is a normal race with the UI host and
// is dropped silently.
func (s *Service) dispatchEvents() {
	for _, event := range s.inbox.drain() {
		s.mu.RLock()
		control := s.index[event.TargetControl()]
		s.mu.RUnlock()
		if control == nil {
			s.logger.Debug("dropping event for unknown control",
				"control", event.TargetControl(), "event", event.EventName())
			continue
		}
		control.HandleEvent(event)
	}
}

// sendDefinitions drains pending definitions and emits one
// DefineControl per control. Definitions are deliberately not
// batched: each is an independent fire against the transport. After a
// successful publish the control's store is committed so its initial
// properties are not re-sent as a diff, and the control becomes live
// for change scans.
func (s *Service) sendDefinitions(ctx context.Context) error {
	for _, pending := range s.scheduler.drainDefines() {
		control := pending.control
		s.register(control)

		command := contracts.NewDefineControl(
			control.ID(), control.Type(), pending.region, control.store().Working(),
		)
		if err := s.publish(ctx, command); err != nil {
			return err
		}
		control.store().Commit()
		markLive(control)
	}
	return nil
}

// sendDeletions drains pending deletions and, if any, emits exactly
// one batched DeleteControls command, then forgets the controls: they
// leave the live index and whatever region holds them.
func (s *Service) sendDeletions(ctx context.Context) error {
	pending := s.scheduler.drainDeletes()
	if len(pending) == 0 {
		return nil
	}

	ids := make([]string, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}
	// Deterministic batch order for downstream logs and tests.
	sort.Strings(ids)

	if err := s.publish(ctx, contracts.NewDeleteControls(ids)); err != nil {
		return err
	}

	s.mu.Lock()
	regions := make([]*Region, 0, len(s.regions))
	for _, region := range s.regions {
		regions = append(regions, region)
	}
	for _, id := range ids {
		delete(s.index, id)
	}
	s.mu.Unlock()

	for _, region := range regions {
		for _, id := range ids {
			region.removeLocal(id)
		}
	}
	return nil
}

// sendChanges scans every live control across all regions, collects
// the dirty ones' diffs into a single ChangeControls batch, and
// commits each included control after the batch is handed to the bus.
// No dirty controls, no command.
func (s *Service) sendChanges(ctx context.Context) error {
	s.mu.RLock()
	regions := make([]*Region, 0, len(s.regions))
	for _, region := range s.regions {
		regions = append(regions, region)
	}
	s.mu.RUnlock()

	updates := make(map[string]map[string]string)
	var included []Control
	for _, region := range regions {
		for _, control := range region.Controls() {
			if !isLive(control) {
				// Added mid-tick; its definition goes out next tick
				// and must precede any change batch.
				continue
			}
			if diff := control.store().Diff(); len(diff) > 0 {
				updates[control.ID()] = diff
				included = append(included, control)
			}
		}
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.publish(ctx, contracts.NewChangeControls(updates)); err != nil {
		return err
	}
	for _, control := range included {
		control.store().Commit()
	}
	return nil
}

// publish encodes a command and hands it to the bus on the command
// stream. Fire-and-forget: a nil return means the bus accepted the
// envelope.
func (s *Service) publish(ctx context.Context, command contracts.Command) error {
	data, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("ui: encoding %s command: %w", command.CommandName(), err)
	}
	env := eventbus.Envelope{
		ID:   command.CommandID(),
		Type: command.CommandName(),
		Data: data,
	}
	if err := s.bus.Publish(ctx, contracts.CommandStream(s.sessionID), env); err != nil {
		return fmt.Errorf("ui: publishing %s command: %w", command.CommandName(), err)
	}
	return nil
}

// register puts a control in the live index so inbound events can
// find it before its definition is acknowledged. Reusing the id of a
// control that is still live is a precondition violation; the engine
// keeps the newest control and says so.
func (s *Service) register(control Control) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.index[control.ID()]; ok && existing != control {
		s.logger.Warn("control id reused while previous control is still live",
			"control", control.ID())
	}
	s.index[control.ID()] = control
}

// lookup resolves a control id against the live index. Exposed for
// tests.
func (s *Service) lookup(id string) Control {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index[id]
}

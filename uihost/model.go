// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package uihost

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocket-welder/sdk-go/contracts"
	"github.com/rocket-welder/sdk-go/eventbus"
)

// commandBuffer is the command channel depth between the bus
// subscription and the bubbletea message loop.
const commandBuffer = 64

// commandMsg wraps a command-stream envelope for delivery through the
// bubbletea message loop.
type commandMsg struct {
	envelope eventbus.Envelope
}

// publishErrorMsg is sent when publishing an interaction event fails.
type publishErrorMsg struct {
	err error
}

// hostControl is the host-side mirror of one defined control.
type hostControl struct {
	id          string
	controlType contracts.ControlType
	region      string
	properties  map[string]string
}

// Model is the top-level bubbletea model for the terminal host.
type Model struct {
	bus       eventbus.Bus
	sessionID string
	theme     Theme
	keys      KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Mirrored control table. order holds control ids in definition
	// order and drives both rendering and focus cycling.
	controls map[string]*hostControl
	order    []string

	// focusID tracks the focused control by id so focus survives
	// table mutations. Empty means nothing is focused.
	focusID string

	// notice is the last error shown in the status bar.
	notice string

	commands     chan eventbus.Envelope
	done         chan struct{}
	closeOnce    *sync.Once
	subscription eventbus.Subscription
}

// NewModel subscribes to the command stream and returns a model ready
// to hand to tea.NewProgram. Call Close after the program exits.
func NewModel(bus eventbus.Bus, sessionID string) (Model, error) {
	if sessionID == "" {
		return Model{}, fmt.Errorf("uihost: session id is required")
	}

	commands := make(chan eventbus.Envelope, commandBuffer)
	done := make(chan struct{})
	subscription, err := bus.Subscribe(contracts.CommandStream(sessionID), func(env eventbus.Envelope) {
		select {
		case commands <- env:
		case <-done:
		}
	})
	if err != nil {
		return Model{}, fmt.Errorf("uihost: subscribing to command stream: %w", err)
	}

	return Model{
		bus:          bus,
		sessionID:    sessionID,
		theme:        DefaultTheme,
		keys:         DefaultKeyMap,
		controls:     make(map[string]*hostControl),
		commands:     commands,
		done:         done,
		closeOnce:    &sync.Once{},
		subscription: subscription,
	}, nil
}

// Close cancels the command subscription and releases any blocked
// bus delivery goroutine. Idempotent.
func (model Model) Close() {
	model.closeOnce.Do(func() {
		close(model.done)
		model.subscription.Close()
	})
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return listenForCommand(model.commands)
}

// listenForCommand returns a tea.Cmd that blocks until a command
// envelope arrives, then delivers it as a commandMsg.
func listenForCommand(commands <-chan eventbus.Envelope) tea.Cmd {
	return func() tea.Msg {
		env, ok := <-commands
		if !ok {
			return nil
		}
		return commandMsg{envelope: env}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case commandMsg:
		model.applyCommand(message.envelope)
		return model, listenForCommand(model.commands)

	case publishErrorMsg:
		model.notice = message.err.Error()

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.Close()
		return model, tea.Quit

	case key.Matches(message, model.keys.NextControl):
		model.cycleFocus(1)

	case key.Matches(message, model.keys.PrevControl):
		model.cycleFocus(-1)

	case key.Matches(message, model.keys.Press):
		if focused := model.focused(); focused != nil && focused.controlType == contracts.ControlTypeIconButton {
			return model, tea.Sequence(
				model.publishEvent(contracts.NewButtonDown(focused.id)),
				model.publishEvent(contracts.NewButtonUp(focused.id)),
			)
		}

	case key.Matches(message, model.keys.Up):
		return model, model.pressArrow(contracts.KeyCodeArrowUp)
	case key.Matches(message, model.keys.Down):
		return model, model.pressArrow(contracts.KeyCodeArrowDown)
	case key.Matches(message, model.keys.Left):
		return model, model.pressArrow(contracts.KeyCodeArrowLeft)
	case key.Matches(message, model.keys.Right):
		return model, model.pressArrow(contracts.KeyCodeArrowRight)
	}
	return model, nil
}

// pressArrow sends a KeyDown/KeyUp pair to the focused arrow grid.
// Terminals report keystrokes, not key releases, so the pair is
// synthesized from a single press.
func (model Model) pressArrow(code string) tea.Cmd {
	focused := model.focused()
	if focused == nil || focused.controlType != contracts.ControlTypeArrowGrid {
		return nil
	}
	return tea.Sequence(
		model.publishEvent(contracts.NewKeyDown(focused.id, code)),
		model.publishEvent(contracts.NewKeyUp(focused.id, code)),
	)
}

// publishEvent returns a tea.Cmd that encodes and publishes one
// interaction event on the session's event stream.
func (model Model) publishEvent(event contracts.Event) tea.Cmd {
	bus, sessionID := model.bus, model.sessionID
	return func() tea.Msg {
		data, err := json.Marshal(event)
		if err != nil {
			return publishErrorMsg{err: fmt.Errorf("encoding %s event: %w", event.EventName(), err)}
		}
		env := eventbus.Envelope{
			ID:   contracts.NewID(),
			Type: event.EventName(),
			Data: data,
		}
		if err := bus.Publish(context.Background(), contracts.EventStream(sessionID), env); err != nil {
			return publishErrorMsg{err: fmt.Errorf("publishing %s event: %w", event.EventName(), err)}
		}
		return nil
	}
}

// applyCommand mirrors one command-stream envelope into the control
// table. Malformed envelopes set the status notice and are otherwise
// ignored: the host must keep rendering whatever state it has.
func (model *Model) applyCommand(env eventbus.Envelope) {
	switch env.Type {
	case "DefineControl":
		var command contracts.DefineControl
		if err := json.Unmarshal(env.Data, &command); err != nil {
			model.notice = fmt.Sprintf("bad DefineControl: %v", err)
			return
		}
		model.define(command)

	case "ChangeControls":
		var command contracts.ChangeControls
		if err := json.Unmarshal(env.Data, &command); err != nil {
			model.notice = fmt.Sprintf("bad ChangeControls: %v", err)
			return
		}
		model.change(command)

	case "DeleteControls":
		var command contracts.DeleteControls
		if err := json.Unmarshal(env.Data, &command); err != nil {
			model.notice = fmt.Sprintf("bad DeleteControls: %v", err)
			return
		}
		model.remove(command)

	default:
		model.notice = fmt.Sprintf("unknown command type %q", env.Type)
	}
}

// define upserts a control. Redefinition replaces the control's state
// in place and keeps its position in the focus order.
func (model *Model) define(command contracts.DefineControl) {
	properties := make(map[string]string, len(command.Properties))
	for k, v := range command.Properties {
		if v == "" {
			continue
		}
		properties[k] = v
	}

	if existing, ok := model.controls[command.ControlID]; ok {
		existing.controlType = command.Type
		existing.region = command.RegionName
		existing.properties = properties
		return
	}
	model.controls[command.ControlID] = &hostControl{
		id:          command.ControlID,
		controlType: command.Type,
		region:      command.RegionName,
		properties:  properties,
	}
	model.order = append(model.order, command.ControlID)

	if model.focusID == "" && interactive(command.Type) {
		model.focusID = command.ControlID
	}
}

// change applies property updates. The empty string is the removal
// tombstone. Updates for unknown controls are dropped: the engine may
// legitimately batch a change for a control defined in an envelope
// the host has not processed yet, and the next definition carries the
// full state anyway.
func (model *Model) change(command contracts.ChangeControls) {
	for controlID, updates := range command.Updates {
		control, ok := model.controls[controlID]
		if !ok {
			continue
		}
		for k, v := range updates {
			if v == "" {
				delete(control.properties, k)
				continue
			}
			control.properties[k] = v
		}
	}
}

func (model *Model) remove(command contracts.DeleteControls) {
	for _, controlID := range command.ControlIDs {
		if _, ok := model.controls[controlID]; !ok {
			continue
		}
		delete(model.controls, controlID)
		for i, id := range model.order {
			if id == controlID {
				model.order = append(model.order[:i], model.order[i+1:]...)
				break
			}
		}
		if model.focusID == controlID {
			model.focusID = ""
		}
	}
	if model.focusID == "" {
		for _, id := range model.order {
			if interactive(model.controls[id].controlType) {
				model.focusID = id
				break
			}
		}
	}
}

// interactive reports whether the control type takes keyboard focus.
func interactive(controlType contracts.ControlType) bool {
	return controlType == contracts.ControlTypeIconButton || controlType == contracts.ControlTypeArrowGrid
}

// focusables returns the ids of focusable controls in definition
// order.
func (model Model) focusables() []string {
	var ids []string
	for _, id := range model.order {
		if interactive(model.controls[id].controlType) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (model Model) focused() *hostControl {
	if model.focusID == "" {
		return nil
	}
	return model.controls[model.focusID]
}

// cycleFocus moves focus by delta through the focusable controls,
// wrapping at both ends.
func (model *Model) cycleFocus(delta int) {
	ids := model.focusables()
	if len(ids) == 0 {
		model.focusID = ""
		return
	}
	current := -1
	for i, id := range ids {
		if id == model.focusID {
			current = i
			break
		}
	}
	if current == -1 {
		model.focusID = ids[0]
		return
	}
	model.focusID = ids[((current+delta)%len(ids)+len(ids))%len(ids)]
}

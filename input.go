package parallax

import (
	"fmt"
	"os"
)

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type assetErrorHandler struct {
	id uint32
	fn func(id string, err error)
}

type handlerRegistry struct {
	click      []clickHandler
	assetError []assetErrorHandler
	nextID     uint32
}

type handlerKind uint8

const (
	handlerClick handlerKind = iota
	handlerAssetError
)

// CallbackHandle allows removing a registered engine-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerClick:
		for i := range h.reg.click {
			if h.reg.click[i].id == h.id {
				h.reg.click = without(h.reg.click, i)
				return
			}
		}
	case handlerAssetError:
		for i := range h.reg.assetError {
			if h.reg.assetError[i].id == h.id {
				h.reg.assetError = without(h.reg.assetError, i)
				return
			}
		}
	}
}

// without returns a fresh slice lacking s[i]. A dispatch loop ranging over
// the old slice is unaffected, so handlers may remove themselves mid-call.
func without[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// OnClick registers an engine-level callback fired whenever a click
// resolves to an entity.
func (e *Engine) OnClick(fn func(ClickContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.click = append(e.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerClick}
}

// OnAssetError registers a callback fired once per entity whose asset fails
// to load. The entity stays unpainted; the rest of the engine is unaffected.
func (e *Engine) OnAssetError(fn func(id string, err error)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.assetError = append(e.handlers.assetError, assetErrorHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: handlerAssetError}
}

// --- Pointer input ---

// PointerMove records a pointer-move event at surface-local (x, y). It only
// updates the pointer tracker; entities react on the next tick.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer.Move(x, y)
}

// Click resolves a click at surface-local (x, y) against the bounds painted
// in the last frame and fires the click callbacks. It returns the clicked
// entity, or nil and false when the click hit nothing.
func (e *Engine) Click(x, y float64) (*Entity, bool) {
	world := Point{x, y}.Sub(e.Offset())
	e.hitBuf = HitCandidates(e.entities, world, e.hitBuf[:0])
	if len(e.hitBuf) == 0 {
		return nil, false
	}
	target := e.hitBuf[len(e.hitBuf)-1]
	ctx := ClickContext{
		Entity: target, ID: target.id, EntityID: target.EntityID, UserData: target.UserData,
		X: x, Y: y, WorldX: world.X, WorldY: world.Y,
	}
	// Engine-level handlers first.
	for _, h := range e.handlers.click {
		h.fn(ctx)
	}
	// Per-entity callback.
	if target.OnClick != nil {
		target.OnClick(ctx)
	}
	e.emitInteractionEvent(EventClick, target, x, y)
	return target, true
}

// Hovered returns the entity under the pointer as of the last tick.
func (e *Engine) Hovered() (*Entity, bool) {
	return e.hovered, e.hovered != nil
}

func (e *Engine) updateHover() {
	var target *Entity
	if world, ok := e.worldPointer(); ok {
		target = HitTest(e.entities, world)
	}
	if target == e.hovered {
		return
	}
	p := e.pointer.Position()
	if e.hovered != nil {
		e.emitInteractionEvent(EventPointerLeave, e.hovered, p.X, p.Y)
	}
	if target != nil {
		e.emitInteractionEvent(EventPointerEnter, target, p.X, p.Y)
	}
	e.hovered = target
}

func (e *Engine) reportAssetError(ent *Entity, err error) {
	if e.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[parallax] asset for %q failed: %v\n", ent.id, err)
	}
	for _, h := range e.handlers.assetError {
		h.fn(ent.id, err)
	}
}

// --- ECS bridge ---

func (e *Engine) emitInteractionEvent(eventType EventType, ent *Entity, x, y float64) {
	if e.store == nil || ent == nil || ent.EntityID == 0 {
		return
	}
	e.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: ent.EntityID,
		ID:       ent.id,
		X:        x,
		Y:        y,
	})
}

package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Dino is the runner. It stands on a fixed ground line, jumps on request and
// ducks under birds. Speeds and the leg cadence come from the live settings.
type Dino struct {
	x, y     float64
	baseY    float64 // Ground contact line (bottom edge when grounded)
	vy       float64 // Vertical velocity, negative = up
	jumping  bool
	ducking  bool
	legFrame int
	leftLeg  bool
	upright  config.Size
	duck     config.Size
	inset    float64
	settings *config.Settings
}

// NewDino creates a runner at x whose feet rest on baseY.
func NewDino(x, baseY float64, sprites config.Sprites, settings *config.Settings) *Dino {
	d := &Dino{
		x:        x,
		baseY:    baseY,
		upright:  sprites.Dino,
		duck:     sprites.DinoDuck,
		inset:    sprites.HitboxInset,
		settings: settings,
	}
	d.Reset()
	return d
}

func (d *Dino) size() config.Size {
	if d.ducking && !d.jumping {
		return d.duck
	}
	return d.upright
}

// Advance applies one frame of jump physics and leg animation.
func (d *Dino) Advance() {
	if d.jumping {
		d.y += d.vy
		d.vy += d.settings.DinoGravity
		if d.y+d.upright.H >= d.baseY {
			d.jumping = false
			d.vy = 0
		}
	}
	if !d.jumping {
		d.y = d.baseY - d.size().H
	}

	d.legFrame++
	if rate := d.settings.DinoLegsRate; rate > 0 && d.legFrame%rate == 0 {
		d.leftLeg = !d.leftLeg
	}
}

// Visible reports whether any part of the runner is inside the viewport.
func (d *Dino) Visible() bool {
	return d.x+d.size().W > 0
}

// Position returns the top-left corner.
func (d *Dino) Position() (float64, float64) {
	return d.x, d.y
}

// Box returns the painted area for the current posture.
func (d *Dino) Box() core.RectF {
	s := d.size()
	return core.NewRectF(d.x, d.y, s.W, s.H)
}

// Hitbox returns the collision area; it is lower and wider while ducking.
func (d *Dino) Hitbox() core.RectF {
	return d.Box().Inset(d.inset)
}

// Sprite names the current animation frame.
func (d *Dino) Sprite() string {
	switch {
	case d.jumping:
		return SpriteDino
	case d.ducking && d.leftLeg:
		return SpriteDinoDuckLeftLeg
	case d.ducking:
		return SpriteDinoDuckRightLeg
	case d.leftLeg:
		return SpriteDinoLeftLeg
	default:
		return SpriteDinoRightLeg
	}
}

// Jump starts a jump. It is refused while already airborne.
func (d *Dino) Jump() bool {
	if d.jumping {
		return false
	}
	d.jumping = true
	d.vy = -d.settings.DinoLift
	d.y = d.baseY - d.upright.H
	return true
}

// Duck sets the ducking posture. A duck requested mid-air takes effect on
// landing.
func (d *Dino) Duck(active bool) {
	d.ducking = active
	if !d.jumping {
		d.y = d.baseY - d.size().H
	}
}

// Ducking reports whether the runner requested the ducking posture.
func (d *Dino) Ducking() bool {
	return d.ducking
}

// Airborne reports whether a jump is in progress.
func (d *Dino) Airborne() bool {
	return d.jumping
}

// Reset puts the runner back on the ground, upright and at rest.
func (d *Dino) Reset() {
	d.jumping = false
	d.ducking = false
	d.vy = 0
	d.legFrame = 0
	d.leftLeg = true
	d.y = d.baseY - d.upright.H
}

// Hits reports whether the runner overlaps any non-nil candidate.
func (d *Dino) Hits(candidates ...Entity) bool {
	return overlapsAny(d.Hitbox(), candidates)
}

// Cactus is a ground obstacle. It scrolls with the ground.
type Cactus struct {
	x, y     float64
	size     config.Size
	inset    float64
	settings *config.Settings
}

// NewCactus creates a cactus of the given variant with its top-left at (x, y).
func NewCactus(x, y float64, size config.Size, inset float64, settings *config.Settings) *Cactus {
	return &Cactus{x: x, y: y, size: size, inset: inset, settings: settings}
}

// Advance scrolls the cactus left at the background speed.
func (c *Cactus) Advance() {
	c.x -= c.settings.BgSpeed
}

// Visible is false once the right edge has passed the left viewport edge.
func (c *Cactus) Visible() bool {
	return c.x+c.size.W > 0
}

// Position returns the top-left corner.
func (c *Cactus) Position() (float64, float64) {
	return c.x, c.y
}

// Box returns the painted area.
func (c *Cactus) Box() core.RectF {
	return core.NewRectF(c.x, c.y, c.size.W, c.size.H)
}

// Hitbox returns the collision area.
func (c *Cactus) Hitbox() core.RectF {
	return c.Box().Inset(c.inset)
}

// Sprite names the cactus sprite.
func (c *Cactus) Sprite() string {
	return SpriteCactus
}

// Bird is an aerial obstacle. It flies slightly slower than the ground
// scrolls and flaps its wings on the wing cadence.
type Bird struct {
	x, y      float64
	size      config.Size
	wingShift float64
	inset     float64
	frame     int
	wingsDown bool
	settings  *config.Settings
}

// NewBird creates a bird with its top-left (wings up) at (x, y).
func NewBird(x, y float64, sprites config.Sprites, settings *config.Settings) *Bird {
	return &Bird{
		x:         x,
		y:         y,
		size:      sprites.Bird,
		wingShift: sprites.BirdWingShift,
		inset:     sprites.HitboxInset,
		settings:  settings,
	}
}

// Advance moves the bird left and flaps.
func (b *Bird) Advance() {
	b.x -= b.settings.BirdSpeed
	b.frame++
	if rate := b.settings.BirdWingsRate; rate > 0 && b.frame%rate == 0 {
		b.wingsDown = !b.wingsDown
	}
}

// Visible is false once the right edge has passed the left viewport edge.
func (b *Bird) Visible() bool {
	return b.x+b.size.W > 0
}

// Position returns the top-left corner.
func (b *Bird) Position() (float64, float64) {
	return b.x, b.y
}

// Box returns the painted area of the current wing frame.
func (b *Bird) Box() core.RectF {
	y := b.y
	if b.wingsDown {
		y += b.wingShift
	}
	return core.NewRectF(b.x, y, b.size.W, b.size.H)
}

// Hitbox covers both wing frames so flapping never changes the outcome.
func (b *Bird) Hitbox() core.RectF {
	return core.NewRectF(b.x, b.y, b.size.W, b.size.H+b.wingShift).Inset(b.inset)
}

// Sprite names the current wing frame.
func (b *Bird) Sprite() string {
	if b.wingsDown {
		return SpriteBirdDown
	}
	return SpriteBirdUp
}

// Cloud is a background decoration. It never collides.
type Cloud struct {
	x, y     float64
	size     config.Size
	settings *config.Settings
}

// NewCloud creates a cloud with its top-left at (x, y).
func NewCloud(x, y float64, size config.Size, settings *config.Settings) *Cloud {
	return &Cloud{x: x, y: y, size: size, settings: settings}
}

// Advance drifts the cloud left.
func (c *Cloud) Advance() {
	c.x -= c.settings.CloudSpeed
}

// Visible is false once the right edge has passed the left viewport edge.
func (c *Cloud) Visible() bool {
	return c.x+c.size.W > 0
}

// Position returns the top-left corner.
func (c *Cloud) Position() (float64, float64) {
	return c.x, c.y
}

// Box returns the painted area.
func (c *Cloud) Box() core.RectF {
	return core.NewRectF(c.x, c.y, c.size.W, c.size.H)
}

// Hitbox is empty; clouds are scenery.
func (c *Cloud) Hitbox() core.RectF {
	return core.RectF{}
}

// Sprite names the cloud sprite.
func (c *Cloud) Sprite() string {
	return SpriteCloud
}

package sim

import (
	"fmt"

	"github.com/vovakirdan/crowd-rush/internal/core"
)

// Update advances the simulation by dt seconds. The caller is expected
// to clamp dt (the platform caps it at 0.033s); dt=0 is a valid call
// that moves nothing and may only run spawner catch-up.
//
// Once the player is dead this is a pure no-op: no movement, scoring,
// or spawning happens, though the final state remains readable.
func (w *World) Update(dt float64, in core.Pointer) {
	if !w.Alive {
		return
	}

	if dt > 0 {
		w.movePlayer(in)

		w.Elapsed += dt
		dy := w.Speed * dt
		w.Distance += dy
		w.scroll(dy)

		w.resolveGates()
		if w.Alive {
			w.fire(dt)
			w.advanceBullets(dt)
			w.resolveBulletHits()
			w.resolveContactDamage()
		}
		if w.Alive {
			w.advanceItems(dt, dy)
		}
		w.advanceFloaters(dt)
		w.prune()
	}

	if w.Alive {
		w.spawnAhead()
		w.spawnBosses()
	}

	if dt > 0 {
		w.publishHUD(dt)
	}
}

// scroll translates every lane-scrolling entity downward. Items also
// scroll but are handled in advanceItems together with their fall.
func (w *World) scroll(dy float64) {
	for i := range w.Gates {
		w.Gates[i].Y += dy
	}
	for i := range w.Zombies {
		w.Zombies[i].Y += dy
	}
	for i := range w.Bosses {
		w.Bosses[i].Y += dy
	}
	for i := range w.Obstacles {
		w.Obstacles[i].Y += dy
	}
}

// resolveGates applies every unused gate the crowd is touching.
func (w *World) resolveGates() {
	for i := range w.Gates {
		g := &w.Gates[i]
		if g.Used || !g.Intersects(w.Player) {
			continue
		}
		g.Used = true

		old := w.Value
		w.Value = ApplyGate(w.Value, g.Op)
		delta := w.Value - old

		text := fmt.Sprintf("%+d", delta)
		w.addFloater(text, w.Player.CenterX(), w.Player.Y)

		if w.Value == 0 {
			w.Alive = false
			return
		}
	}
}

// fire emits one upward bullet per crowd segment whenever the shared
// cooldown elapses. The cooldown resets to a fixed interval regardless
// of crowd size.
func (w *World) fire(dt float64) {
	w.shootCooldown -= dt
	if w.shootCooldown > 0 {
		return
	}
	w.shootCooldown = shootInterval

	count := PlayerCount(w.Value)
	damage := bulletBaseDamage + w.AttackBonus
	for i := 0; i < count; i++ {
		x := w.segmentX(i) + segmentW/2 - bulletW/2
		w.Bullets = append(w.Bullets, Bullet{
			RectF:  core.NewRectF(x, w.Player.Y-bulletH, bulletW, bulletH),
			VY:     -bulletSpeed,
			Life:   bulletLife,
			Damage: damage,
		})
	}
}

// advanceBullets integrates bullet motion and expires old bullets.
func (w *World) advanceBullets(dt float64) {
	for i := range w.Bullets {
		b := &w.Bullets[i]
		b.Life -= dt
		b.Y += b.VY * dt
	}
}

// resolveBulletHits applies bullet damage. Each bullet hits at most one
// target per frame: zombies are checked before bosses, in collection
// order, and only a bullet that hit no enemy is tested against
// obstacles. A hit consumes the bullet.
func (w *World) resolveBulletHits() {
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Life <= 0 {
			continue
		}

		if w.hitEnemy(b) {
			continue
		}
		w.hitObstacle(b)
	}
}

// hitEnemy tests a bullet against zombies then bosses. Returns true if
// the bullet was consumed.
func (w *World) hitEnemy(b *Bullet) bool {
	for i := range w.Zombies {
		z := &w.Zombies[i]
		if z.HP <= 0 || !b.Intersects(z.RectF) {
			continue
		}
		z.HP -= b.Damage
		b.Life = 0
		w.addFloater(fmt.Sprintf("-%d", b.Damage), z.CenterX(), z.Y)
		return true
	}
	for i := range w.Bosses {
		boss := &w.Bosses[i]
		if boss.HP <= 0 || !b.Intersects(boss.RectF) {
			continue
		}
		boss.HP -= b.Damage
		b.Life = 0
		w.addFloater(fmt.Sprintf("-%d", b.Damage), boss.CenterX(), boss.Y)
		return true
	}
	return false
}

// hitObstacle tests a bullet against obstacles. Obstacle death drops an
// attack item at its bottom-center.
func (w *World) hitObstacle(b *Bullet) {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.HP <= 0 || !b.Intersects(o.RectF) {
			continue
		}
		o.HP -= b.Damage
		b.Life = 0
		if o.HP <= 0 {
			w.spawnAttackItem(*o)
		}
		return
	}
}

// resolveContactDamage applies damage from every hazard the crowd is
// touching this step. The checks are independent: overlapping several
// hazards at once hurts cumulatively in one step. Bosses reaching the
// lane bottom end the run outright.
func (w *World) resolveContactDamage() {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.HP > 0 && o.Intersects(w.Player) {
			w.hurt(1)
		}
	}
	for i := range w.Zombies {
		z := &w.Zombies[i]
		if z.HP > 0 && z.Intersects(w.Player) {
			w.hurt(z.Damage)
		}
	}
	for i := range w.Bosses {
		b := &w.Bosses[i]
		if b.HP <= 0 {
			continue
		}
		if b.Bottom() >= core.LaneH {
			w.Alive = false
			return
		}
		if b.Intersects(w.Player) {
			w.hurt(b.Damage)
		}
	}
}

// advanceItems moves items (lane scroll plus own fall) and collects any
// the crowd touches. Collection raises the capped global attack bonus;
// no floater is emitted when the cap eats the whole bonus.
func (w *World) advanceItems(dt, dy float64) {
	for i := range w.Items {
		it := &w.Items[i]
		it.Y += dy + it.FallVel*dt

		if it.Collected || !it.Intersects(w.Player) {
			continue
		}
		it.Collected = true

		gained := core.Min(it.Bonus, attackBonusCap-w.AttackBonus)
		if gained <= 0 {
			continue
		}
		w.AttackBonus += gained
		w.addFloater(fmt.Sprintf("+%d ATK", gained), w.Player.CenterX(), w.Player.Y)
	}
}

// advanceFloaters drifts feedback text upward and fades it out.
func (w *World) advanceFloaters(dt float64) {
	for i := range w.Floaters {
		f := &w.Floaters[i]
		f.Life -= dt
		f.Y += f.VY * dt
	}
}

// prune removes dead, used, expired, collected, and far-off-screen
// entities, compacting each slice in place.
func (w *World) prune() {
	gates := w.Gates[:0]
	for _, g := range w.Gates {
		if !g.Used && g.Y <= core.LaneH+pruneMargin {
			gates = append(gates, g)
		}
	}
	w.Gates = gates

	zombies := w.Zombies[:0]
	for _, z := range w.Zombies {
		if z.HP > 0 && z.Y <= core.LaneH+pruneMargin {
			zombies = append(zombies, z)
		}
	}
	w.Zombies = zombies

	bosses := w.Bosses[:0]
	for _, b := range w.Bosses {
		if b.HP > 0 && b.Y <= core.LaneH+bossPruneMargin {
			bosses = append(bosses, b)
		}
	}
	w.Bosses = bosses

	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.HP > 0 && o.Y <= core.LaneH+pruneMargin {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	items := w.Items[:0]
	for _, it := range w.Items {
		if !it.Collected && it.Y <= core.LaneH+pruneMargin {
			items = append(items, it)
		}
	}
	w.Items = items

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Life > 0 && b.Bottom() >= -pruneMargin {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets

	floaters := w.Floaters[:0]
	for _, f := range w.Floaters {
		if f.Life > 0 {
			floaters = append(floaters, f)
		}
	}
	w.Floaters = floaters
}

// publishHUD refreshes the throttled HUD snapshot.
func (w *World) publishHUD(dt float64) {
	w.hudAccum += dt
	if w.hudAccum < hudInterval && w.Alive {
		return
	}
	w.hudAccum = 0
	w.hud = HUDSnapshot{
		Value: w.Value,
		Dist:  int(w.Distance),
		Alive: w.Alive,
	}
}

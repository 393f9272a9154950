package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCollideCircles_Separated(t *testing.T) {
	tests := []struct {
		name   string
		a, b   rl.Vector2
		ra, rb float32
	}{
		{name: "apart", a: rl.NewVector2(0, 0), b: rl.NewVector2(50, 0), ra: 10, rb: 10},
		{name: "touching", a: rl.NewVector2(0, 0), b: rl.NewVector2(20, 0), ra: 10, rb: 10},
		{name: "diagonal", a: rl.NewVector2(10, 10), b: rl.NewVector2(40, 50), ra: 20, rb: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewCircle(tt.a, tt.ra)
			b := NewCircle(tt.b, tt.rb)
			if CollideCircles(a, b) {
				t.Fatal("CollideCircles = true, want false")
			}
			if a.Position != tt.a || b.Position != tt.b {
				t.Errorf("positions moved to %v %v", a.Position, b.Position)
			}
		})
	}
}

func TestCollideCircles_OverlapResolvedSymmetrically(t *testing.T) {
	tests := []struct {
		name   string
		a, b   rl.Vector2
		ra, rb float32
	}{
		{name: "horizontal", a: rl.NewVector2(0, 0), b: rl.NewVector2(15, 0), ra: 10, rb: 10},
		{name: "diagonal", a: rl.NewVector2(100, 100), b: rl.NewVector2(110, 108), ra: 12, rb: 7},
		{name: "deep", a: rl.NewVector2(5, 5), b: rl.NewVector2(6, 5), ra: 30, rb: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewCircle(tt.a, tt.ra)
			b := NewCircle(tt.b, tt.rb)
			if !CollideCircles(a, b) {
				t.Fatal("CollideCircles = false, want true")
			}
			if d := rl.Vector2Distance(a.Position, b.Position); !near(d, tt.ra+tt.rb) {
				t.Errorf("distance after = %v, want %v", d, tt.ra+tt.rb)
			}
			da := rl.Vector2Distance(a.Position, tt.a)
			db := rl.Vector2Distance(b.Position, tt.b)
			if !near(da, db) {
				t.Errorf("|ΔA| = %v, |ΔB| = %v, want equal", da, db)
			}
			if a.Velocity != (rl.Vector2{}) || b.Velocity != (rl.Vector2{}) {
				t.Error("circle contact must not change velocity")
			}
		})
	}
}

func TestCollideCircles_Coincident(t *testing.T) {
	a := NewCircle(rl.NewVector2(10, 10), 5)
	b := NewCircle(rl.NewVector2(10, 10), 5)
	if !CollideCircles(a, b) {
		t.Fatal("CollideCircles = false, want true")
	}
	if !nearVec(a.Position, rl.NewVector2(10, 5)) || !nearVec(b.Position, rl.NewVector2(10, 15)) {
		t.Errorf("positions = %v %v, want (10,5) (10,15)", a.Position, b.Position)
	}
	for _, v := range []float32{a.Position.X, a.Position.Y, b.Position.X, b.Position.Y} {
		if math32.IsNaN(v) {
			t.Fatal("NaN position")
		}
	}
}

func TestCollideCircles_StaticIsImmovable(t *testing.T) {
	a := NewCircle(rl.NewVector2(0, 0), 10)
	a.Static = true
	b := NewCircle(rl.NewVector2(15, 0), 10)
	if !CollideCircles(a, b) {
		t.Fatal("CollideCircles = false, want true")
	}
	if a.Position != (rl.Vector2{}) {
		t.Errorf("static circle moved to %v", a.Position)
	}
	if !nearVec(b.Position, rl.NewVector2(20, 0)) {
		t.Errorf("dynamic circle at %v, want (20,0)", b.Position)
	}
}

func TestCollideCircleHalfSpace_NoContact(t *testing.T) {
	c := NewCircle(rl.NewVector2(0, 50), 10)
	plane := NewHalfSpace(rl.NewVector2(0, 100), 0)
	plane.SetFriction(0)
	c.SetFriction(0)
	if CollideCircleHalfSpace(c, plane, rl.NewVector2(0, 98)) {
		t.Fatal("CollideCircleHalfSpace = true, want false")
	}
	if c.Position != rl.NewVector2(0, 50) || c.NetForce != (rl.Vector2{}) {
		t.Errorf("circle mutated: pos %v force %v", c.Position, c.NetForce)
	}
}

func TestCollideCircleHalfSpace_PushOut(t *testing.T) {
	c := NewCircle(rl.NewVector2(0, 95), 10)
	plane := NewHalfSpace(rl.NewVector2(0, 100), 0)
	if !CollideCircleHalfSpace(c, plane, rl.NewVector2(0, 98)) {
		t.Fatal("CollideCircleHalfSpace = false, want true")
	}
	if !nearVec(c.Position, rl.NewVector2(0, 90)) {
		t.Errorf("Position = %v, want (0,90)", c.Position)
	}
	if plane.Position != rl.NewVector2(0, 100) {
		t.Errorf("half-space moved to %v", plane.Position)
	}
}

func TestCollideCircleHalfSpace_NormalForceCancelsGravity(t *testing.T) {
	c := NewCircle(rl.NewVector2(0, 91), 10)
	_ = c.SetMass(2)
	plane := NewHalfSpace(rl.NewVector2(0, 100), 0)
	gravity := rl.NewVector2(0, 98)
	c.AddForce(rl.Vector2Scale(gravity, c.Mass))
	if !CollideCircleHalfSpace(c, plane, gravity) {
		t.Fatal("CollideCircleHalfSpace = false, want true")
	}
	if !near(c.NetForce.Y, 0) {
		t.Errorf("vertical net force = %v, want 0", c.NetForce.Y)
	}
	// Gravity is purely perpendicular here, so there is nothing for friction to oppose.
	if !near(c.NetForce.X, 0) {
		t.Errorf("horizontal net force = %v, want 0", c.NetForce.X)
	}
}

func TestCollideCircleHalfSpace_SlopeFriction(t *testing.T) {
	gravity := rl.NewVector2(0, 100)
	plane := NewHalfSpace(rl.NewVector2(0, 100), 30)
	plane.SetFriction(0.5)
	c := NewCircle(plane.Position, 10)
	c.SetFriction(0.8)

	if !CollideCircleHalfSpace(c, plane, gravity) {
		t.Fatal("CollideCircleHalfSpace = false, want true")
	}

	n := plane.Normal()
	fg := rl.Vector2Scale(gravity, c.Mass)
	perp := rl.Vector2Scale(n, rl.Vector2DotProduct(fg, n))
	tangent := rl.Vector2Subtract(fg, perp)

	friction := rl.Vector2Subtract(c.NetForce, rl.Vector2Negate(perp))
	wantMag := float32(0.4) * rl.Vector2Length(perp)
	if got := rl.Vector2Length(friction); !near(got, wantMag) {
		t.Errorf("friction magnitude = %v, want %v", got, wantMag)
	}
	if rl.Vector2DotProduct(friction, tangent) >= 0 {
		t.Errorf("friction %v does not oppose tangential gravity %v", friction, tangent)
	}
}

func TestFrictionForce_Bounded(t *testing.T) {
	plane := NewHalfSpace(rl.Vector2{}, 0)
	for deg := float32(-180); deg <= 180; deg += 15 {
		plane.SetRotation(deg)
		n := plane.Normal()
		for _, g := range []rl.Vector2{{X: 0, Y: 98}, {X: 40, Y: 10}, {X: -300, Y: 600}, {X: 1, Y: 0}} {
			for _, u := range []float32{0, 0.01, 0.25, 1} {
				perp := rl.Vector2Scale(n, rl.Vector2DotProduct(g, n))
				f := FrictionForce(g, perp, u)
				limit := u*rl.Vector2Length(perp) + tolerance
				if got := rl.Vector2Length(f); got > limit {
					t.Fatalf("deg %v g %v u %v: |friction| = %v exceeds %v", deg, g, u, got, limit)
				}
			}
		}
	}
}

func TestFrictionForce_ZeroTangent(t *testing.T) {
	perp := rl.NewVector2(0, 50)
	f := FrictionForce(perp, perp, 1)
	if f != (rl.Vector2{}) {
		t.Errorf("FrictionForce = %v, want zero", f)
	}
}

func TestCollide_Dispatch(t *testing.T) {
	gravity := rl.NewVector2(0, 100)

	t.Run("half-space first", func(t *testing.T) {
		plane := NewHalfSpace(rl.NewVector2(0, 100), 0)
		c := NewCircle(rl.NewVector2(0, 95), 10)
		if !Collide(plane, c, gravity) {
			t.Fatal("Collide = false, want true")
		}
		if !nearVec(c.Position, rl.NewVector2(0, 90)) {
			t.Errorf("circle at %v, want (0,90)", c.Position)
		}
	})

	t.Run("two half-spaces", func(t *testing.T) {
		a := NewHalfSpace(rl.NewVector2(0, 100), 0)
		b := NewHalfSpace(rl.NewVector2(0, 100), 45)
		if Collide(a, b, gravity) {
			t.Error("half-space pairs must not collide")
		}
		if a.Position != b.Position || a.NetForce != (rl.Vector2{}) || b.NetForce != (rl.Vector2{}) {
			t.Error("half-space pair mutated")
		}
	})

	t.Run("two circles", func(t *testing.T) {
		a := NewCircle(rl.NewVector2(0, 0), 10)
		b := NewCircle(rl.NewVector2(10, 0), 10)
		if !Collide(a, b, gravity) {
			t.Fatal("Collide = false, want true")
		}
		if a.NetForce != (rl.Vector2{}) || b.NetForce != (rl.Vector2{}) {
			t.Error("circle pair must not add forces")
		}
	})
}

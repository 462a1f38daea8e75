package game

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewInitialState(t *testing.T) {
	s := NewInitialState(&fixedRand{frac: 0.5})

	if s.Kind != KindCountdown {
		t.Fatalf("expected countdown, got %v", s.Kind)
	}
	if s.Countdown.Remaining != CountdownDuration {
		t.Errorf("expected %v remaining, got %v", CountdownDuration, s.Countdown.Remaining)
	}
	if s.Countdown.Next == nil || s.Countdown.Next.Kind != KindPlay {
		t.Fatal("expected countdown to hold a play state")
	}

	play := s.Countdown.Next.Play
	if play.Left.Side != SideLeft || play.Right.Side != SideRight {
		t.Error("expected one player per side")
	}
	if play.Ball.X != WindowWidth/2 || play.Ball.Y != WindowHeight/2 {
		t.Errorf("expected ball at centre, got (%f, %f)", play.Ball.X, play.Ball.Y)
	}
}

func TestCountdown_CountsDown(t *testing.T) {
	s := NewCountdownState(time.Second, NewPlayState(NewPlay(&fixedRand{})))

	s, ev := s.Update(0.25, nil)

	if s.Kind != KindCountdown {
		t.Fatalf("expected still counting down, got %v", s.Kind)
	}
	if s.Countdown.Remaining != 750*time.Millisecond {
		t.Errorf("expected 750ms remaining, got %v", s.Countdown.Remaining)
	}
	if ev != 0 {
		t.Errorf("expected no events, got %b", ev)
	}
}

func TestCountdown_Saturates(t *testing.T) {
	next := NewPlayState(NewPlay(&fixedRand{frac: 0.5}))
	next.Play.Left.Score = 4
	s := NewCountdownState(100*time.Millisecond, next)

	s, ev := s.Update(0.2, nil)

	if s.Kind != KindPlay {
		t.Fatalf("expected play after countdown, got %v", s.Kind)
	}
	if s.Play.Left.Score != 4 {
		t.Errorf("expected the held state, got left score %d", s.Play.Left.Score)
	}
	if !ev.Has(EventResume) {
		t.Error("expected resume event")
	}
}

func TestCountdown_ExactlyZero(t *testing.T) {
	s := NewCountdownState(500*time.Millisecond, NewPlayState(NewPlay(&fixedRand{})))

	s, _ = s.Update(0.5, nil)

	if s.Kind != KindPlay {
		t.Errorf("expected play when countdown reaches zero exactly, got %v", s.Kind)
	}
}

func TestCountdown_MissingNextPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "next state") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()

	s := State{Kind: KindCountdown, Countdown: Countdown{Remaining: time.Millisecond}}
	s.Update(1, nil)
}

func TestState_UnsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero state")
		}
	}()

	var s State
	s.Update(0.1, nil)
}

func TestCountdown_Seconds(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      int
	}{
		{3 * time.Second, 3},
		{2999 * time.Millisecond, 2},
		{time.Second, 1},
		{999 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		c := Countdown{Remaining: tt.remaining}
		if got := c.Seconds(); got != tt.want {
			t.Errorf("Seconds() with %v = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}

func TestCountdown_IgnoresInput(t *testing.T) {
	s := NewInitialState(&fixedRand{})

	s.Press(ActionLeftUp)
	s.Press(ActionRightDown)

	if s.Countdown.Next.Play.Left.Paddle.Input != InputNone {
		t.Error("countdown must not forward input to the held round")
	}
	if s.Countdown.Next.Play.Right.Paddle.Input != InputNone {
		t.Error("countdown must not forward input to the held round")
	}
}

func TestPlay_RoutesInput(t *testing.T) {
	s := NewPlayState(NewPlay(&fixedRand{}))

	s.Press(ActionLeftUp)
	s.Press(ActionRightDown)
	s.Press(ActionRightUp)
	s.Press(ActionNone)

	if s.Play.Left.Paddle.Input != InputUp {
		t.Errorf("expected left input up, got %v", s.Play.Left.Paddle.Input)
	}
	if s.Play.Right.Paddle.Input != InputUpDown {
		t.Errorf("expected right input up+down, got %v", s.Play.Right.Paddle.Input)
	}

	s.Release(ActionRightDown)
	s.Release(ActionLeftUp)
	s.Release(ActionLeftDown)

	if s.Play.Left.Paddle.Input != InputNone {
		t.Errorf("expected left input none, got %v", s.Play.Left.Paddle.Input)
	}
	if s.Play.Right.Paddle.Input != InputUp {
		t.Errorf("expected right input up, got %v", s.Play.Right.Paddle.Input)
	}
}

func TestPlay_MovesPaddlesAndBall(t *testing.T) {
	s := NewPlayState(NewPlay(&fixedRand{frac: 0.5}))
	s.Press(ActionLeftUp)

	s, ev := s.Update(0.1, &fixedRand{frac: 0.5})

	if s.Kind != KindPlay {
		t.Fatalf("expected play, got %v", s.Kind)
	}
	if ev != 0 {
		t.Errorf("expected no events, got %b", ev)
	}
	if s.Play.Left.Paddle.Y != WindowHeight/2+PaddleSpeed*0.1 {
		t.Errorf("expected left paddle to move up, got Y=%f", s.Play.Left.Paddle.Y)
	}
	if s.Play.Right.Paddle.Y != WindowHeight/2 {
		t.Errorf("expected right paddle to stay, got Y=%f", s.Play.Right.Paddle.Y)
	}
	if s.Play.Ball.X != WindowWidth/2+StartBallVelocity*0.1 {
		t.Errorf("expected ball to move right, got X=%f", s.Play.Ball.X)
	}
}

func TestPlay_RightScores(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	play.Ball = Ball{X: -BallWidth, Y: 200, VX: -StartBallVelocity, VY: 0}
	play.Left.Score = 2
	play.Right.Score = 5

	s, ev := NewPlayState(play).Update(0, &fixedRand{frac: 0.5})

	if s.Kind != KindCountdown {
		t.Fatalf("expected countdown after a point, got %v", s.Kind)
	}
	if !ev.Has(EventScoreRight) || ev.Has(EventScoreLeft) {
		t.Errorf("expected only a right score event, got %b", ev)
	}
	if s.Countdown.Remaining != CountdownDuration {
		t.Errorf("expected %v countdown, got %v", CountdownDuration, s.Countdown.Remaining)
	}

	next := s.Countdown.Next.Play
	if next.Right.Score != 6 {
		t.Errorf("expected right score 6, got %d", next.Right.Score)
	}
	if next.Left.Score != 2 {
		t.Errorf("expected left score unchanged at 2, got %d", next.Left.Score)
	}
}

func TestPlay_LeftScores(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	play.Ball = Ball{X: WindowWidth - 1, Y: 200, VX: StartBallVelocity, VY: 0}

	s, ev := NewPlayState(play).Update(0.1, &fixedRand{frac: 0.5})

	if s.Kind != KindCountdown {
		t.Fatalf("expected countdown after a point, got %v", s.Kind)
	}
	if !ev.Has(EventScoreLeft) {
		t.Errorf("expected a left score event, got %b", ev)
	}
	if s.Countdown.Next.Play.Left.Score != 1 || s.Countdown.Next.Play.Right.Score != 0 {
		t.Errorf("unexpected scores %d-%d", s.Countdown.Next.Play.Left.Score, s.Countdown.Next.Play.Right.Score)
	}
}

func TestPlay_ScoreResetsBall(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	play.Left.Paddle.Input = InputUp

	// Score several times from fast balls going both ways
	for i, vx := range []float64{-900, 750, -StartBallVelocity * math.Pow(BallMultiplier, 9)} {
		if vx < 0 {
			play.Ball = Ball{X: -BallWidth, Y: 100, VX: vx, VY: 30}
		} else {
			play.Ball = Ball{X: WindowWidth, Y: 100, VX: vx, VY: 30}
		}

		rng := &fixedRand{frac: 0.9}
		s, _ := NewPlayState(play).Update(0, rng)
		if s.Kind != KindCountdown {
			t.Fatalf("round %d: expected countdown, got %v", i, s.Kind)
		}

		ball := s.Countdown.Next.Play.Ball
		if ball.X != WindowWidth/2 || ball.Y != WindowHeight/2 {
			t.Errorf("round %d: expected ball at centre, got (%f, %f)", i, ball.X, ball.Y)
		}
		if ball.VX != StartBallVelocity {
			t.Errorf("round %d: expected VX=%f, got %f", i, StartBallVelocity, ball.VX)
		}
		if ball.VY != 160 {
			t.Errorf("round %d: expected a fresh VY=160, got %f", i, ball.VY)
		}
		if rng.calls != 1 {
			t.Errorf("round %d: expected one rng draw, got %d", i, rng.calls)
		}

		play = s.Countdown.Next.Play
	}

	if play.Left.Score+play.Right.Score != 3 {
		t.Errorf("expected 3 points in total, got %d", play.Left.Score+play.Right.Score)
	}
	if play.Left.Paddle.Input != InputUp {
		t.Error("players should carry over into the next round unchanged")
	}
}

func TestPlay_PaddleBounce(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	paddle := play.Left.Paddle
	play.Ball = Ball{X: paddle.X + PaddleWidth - 1, Y: paddle.Y + 10, VX: -StartBallVelocity, VY: 0}

	rng := &fixedRand{frac: 0.25}
	s, ev := NewPlayState(play).Update(0.01, rng)

	if !ev.Has(EventPaddleHit) {
		t.Fatalf("expected a paddle hit, got %b", ev)
	}
	if s.Kind != KindPlay {
		t.Fatalf("expected play to continue, got %v", s.Kind)
	}
	want := StartBallVelocity * BallMultiplier
	if math.Abs(s.Play.Ball.VX-want) > 1e-9 {
		t.Errorf("expected VX=%f, got %f", want, s.Play.Ball.VX)
	}
	if s.Play.Ball.VY != -100 {
		t.Errorf("expected redrawn VY=-100, got %f", s.Play.Ball.VY)
	}
}

func TestPlay_BounceCompounds(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	paddle := play.Right.Paddle
	play.Ball = Ball{X: paddle.X, Y: paddle.Y, VX: StartBallVelocity}

	// dt=0 keeps the ball inside the paddle so every tick is a hit
	s := NewPlayState(play)
	const hits = 5
	for i := 0; i < hits; i++ {
		var ev Events
		s, ev = s.Update(0, &fixedRand{frac: 0.5})
		if !ev.Has(EventPaddleHit) {
			t.Fatalf("tick %d: expected a paddle hit", i)
		}
	}

	want := StartBallVelocity * math.Pow(BallMultiplier, hits)
	if math.Abs(math.Abs(s.Play.Ball.VX)-want) > 1e-9 {
		t.Errorf("expected |VX|=%f, got %f", want, math.Abs(s.Play.Ball.VX))
	}
}

func TestPlay_WallBounceEvent(t *testing.T) {
	play := NewPlay(&fixedRand{frac: 0.5})
	play.Ball = Ball{X: 500, Y: 1, VX: 0, VY: -100}

	_, ev := NewPlayState(play).Update(0.1, &fixedRand{})

	if !ev.Has(EventWallBounce) {
		t.Errorf("expected a wall bounce event, got %b", ev)
	}
}

func TestPlay_Player(t *testing.T) {
	play := NewPlay(&fixedRand{})
	play.Player(SideRight).Score = 9

	if play.Right.Score != 9 {
		t.Errorf("expected Player to return the stored player")
	}
	if play.Player(SideLeft).Side != SideLeft {
		t.Errorf("expected the left player")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("none must not be bindable")
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("unknown names must be rejected")
	}
}

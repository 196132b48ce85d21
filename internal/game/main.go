package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Audio is best-effort: the game runs fine silent.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("FLAPPY_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	sr, sg, sb := Palette.Sky.Vec3()
	gl.ClearColor(sr, sg, sb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Systems. The session is the pure core; audio, particles and shake
	// hang off the event bus so the core never calls into them.
	bus := NewEventBus()
	particles := NewParticleSystem(MaxParticles, splitmix64(seed^0xBEAD))
	session := NewGameSession(seed, bus)
	cam := NewCamera()
	input := NewInput()

	bus.Subscribe(EventStarted, func(Event) {
		PlaySound(SoundMenuSelect)
	})
	bus.Subscribe(EventFlapped, func(e Event) {
		PlaySound(SoundFlap)
		particles.SpawnFlapPuff(e.Y)
	})
	bus.Subscribe(EventScored, func(e Event) {
		PlaySound(SoundScore)
		particles.SpawnScoreSparkle(e.X, e.Y)
	})
	bus.Subscribe(EventLevelUp, func(Event) {
		PlaySound(SoundLevelUp)
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		PlaySound(SoundHit)
		PlaySound(SoundGameOver)
		particles.SpawnCrashBurst(e.Y)
		cam.AddShake(0.35, 0.5)
	})

	var spriteBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// One logical tick per rendered frame, vsync-paced.
		session.Step(input.Gather(window))

		particles.Update(dt)
		cam.UpdateShake(dt, seed^uint64(now*1000))

		// Render in every state so the terminal frame stays visible.
		rend.BeginFrame(&cam, fbW, fbH)
		renderScene(rend, session)
		spriteBuf = particles.RenderData(spriteBuf)
		rend.DrawSprites(spriteBuf)
		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}
}

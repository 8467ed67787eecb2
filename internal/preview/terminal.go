package preview

import (
	"bufio"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"

	"github.com/mirstar13/go-octree-raytracer/internal/scene"
)

// Terminal renders Scene.Render's output as ANSI truecolor cells,
// sampling every other row (since a terminal character cell is roughly
// twice as tall as wide) and moving the camera from raw keystrokes read
// via eiannone/keyboard, grounded on the teacher's renderer_terminal.go
// (alternate-screen + cursor-home escape sequences) and win_input.go
// (keyboard.Open/GetKey raw-mode reading).
type Terminal struct {
	scene  *scene.Scene
	width  int
	height int
	writer *bufio.Writer

	moveSpeed float64
	lookSpeed float64
}

// NewTerminal builds a Terminal preview writing to stdout.
func NewTerminal(s *scene.Scene, width, height int) *Terminal {
	return &Terminal{
		scene:     s,
		width:     width,
		height:    height,
		writer:    bufio.NewWriter(os.Stdout),
		moveSpeed: 0.5,
		lookSpeed: 0.05,
	}
}

// Run enters the alternate screen, renders frames in a loop reading
// WASD+arrow keys until 'q' or Esc, then restores the terminal. Keys
// are read from a background goroutine so GetKey's blocking call never
// stalls the render loop, matching win_input.go's SilentInputManager.
func (t *Terminal) Run() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("preview: opening keyboard: %w", err)
	}
	defer keyboard.Close()

	t.writer.WriteString("\033[?1049h") // alternate screen
	t.writer.WriteString("\033[?25l")   // hide cursor
	t.writer.WriteString("\033[2J")     // clear
	defer func() {
		t.writer.WriteString("\033[?25h")
		t.writer.WriteString("\033[?1049l")
		t.writer.Flush()
	}()

	quit := make(chan struct{})
	go func() {
		for {
			r, key, err := keyboard.GetKey()
			if err != nil {
				continue
			}
			if t.handleKey(key, r) {
				close(quit)
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		default:
			t.renderFrame()
		}
	}
}

// handleKey applies one keystroke to the scene's camera and reports
// whether the preview should exit.
func (t *Terminal) handleKey(key keyboard.Key, r rune) bool {
	cam := t.scene.Camera
	switch {
	case key == keyboard.KeyEsc || r == 'q':
		return true
	case r == 'w':
		cam.MoveForward(t.moveSpeed)
	case r == 's':
		cam.MoveForward(-t.moveSpeed)
	case r == 'a':
		cam.MoveRight(-t.moveSpeed)
	case r == 'd':
		cam.MoveRight(t.moveSpeed)
	case key == keyboard.KeyArrowLeft:
		cam.RotateYaw(-t.lookSpeed)
	case key == keyboard.KeyArrowRight:
		cam.RotateYaw(t.lookSpeed)
	case key == keyboard.KeyArrowUp:
		cam.RotatePitch(-t.lookSpeed)
	case key == keyboard.KeyArrowDown:
		cam.RotatePitch(t.lookSpeed)
	}
	return false
}

func (t *Terminal) renderFrame() {
	pixels := t.scene.Render(t.width, t.height)

	t.writer.WriteString("\033[H")
	for row := 0; row < t.height; row += 2 {
		for col := 0; col < t.width; col++ {
			i := (row*t.width + col) * 3
			r, g, b := pixels[i], pixels[i+1], pixels[i+2]
			fmt.Fprintf(t.writer, "\033[38;2;%d;%d;%dm█", r, g, b)
		}
		t.writer.WriteString("\033[0m\033[K\n")
	}
	t.writer.Flush()
}

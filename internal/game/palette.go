package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Vec3 returns the colour as normalized float components for GL uniforms.
func (c RGB) Vec3() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Sky      RGB
	Bird     RGB
	BirdBeak RGB
	Pipe     RGB
	PipeRim  RGB
	Rail     RGB
	Feather  RGB
	Spark    RGB
	Debris   RGB
}{
	Sky:      RGB{R: 92, G: 148, B: 214},
	Bird:     RGB{R: 250, G: 204, B: 36},
	BirdBeak: RGB{R: 240, G: 120, B: 30},
	Pipe:     RGB{R: 46, G: 176, B: 62},
	PipeRim:  RGB{R: 30, G: 130, B: 44},
	Rail:     RGB{R: 58, G: 64, B: 78},
	Feather:  RGB{R: 255, G: 228, B: 110},
	Spark:    RGB{R: 255, G: 250, B: 170},
	Debris:   RGB{R: 220, G: 90, B: 50},
}

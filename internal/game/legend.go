package game

import (
	"strconv"

	"github.com/vovakirdan/fruit2048/internal/core"
)

// RenderMode selects how tiles are labelled.
type RenderMode string

const (
	ModeFruit  RenderMode = "fruit"
	ModeNumber RenderMode = "number"
)

// Fruit is the display form of a tile value.
type Fruit struct {
	Value  int
	Symbol string
	Name   string
	Color  core.Color
}

var fruits = []Fruit{
	{Value: 2, Symbol: "🍎", Name: "apple", Color: core.ColorRed},
	{Value: 4, Symbol: "🍐", Name: "pear", Color: core.ColorBrightGreen},
	{Value: 8, Symbol: "🍓", Name: "strawberry", Color: core.ColorBrightRed},
	{Value: 16, Symbol: "🍍", Name: "pineapple", Color: core.ColorYellow},
	{Value: 32, Symbol: "🍇", Name: "grapes", Color: core.ColorMagenta},
	{Value: 64, Symbol: "🍌", Name: "banana", Color: core.ColorBrightYellow},
	{Value: 128, Symbol: "🍑", Name: "peach", Color: core.ColorOrange},
	{Value: 256, Symbol: "🥝", Name: "kiwi", Color: core.ColorGreen},
	{Value: 512, Symbol: "🍒", Name: "cherries", Color: core.ColorPink},
	{Value: 1024, Symbol: "🍉", Name: "watermelon", Color: core.ColorBrightMagenta},
	{Value: 2048, Symbol: "🥭", Name: "mango", Color: core.ColorBrightCyan},
}

// Legend returns every fruit in ascending value order.
func Legend() []Fruit {
	out := make([]Fruit, len(fruits))
	copy(out, fruits)
	return out
}

// FruitFor returns the fruit for value, if it has one.
func FruitFor(value int) (Fruit, bool) {
	for _, f := range fruits {
		if f.Value == value {
			return f, true
		}
	}
	return Fruit{}, false
}

// TileLabel returns the text drawn for a tile. Values past the legend fall
// back to the number in either mode.
func TileLabel(value int, mode RenderMode) string {
	if value == 0 {
		return ""
	}
	if mode == ModeFruit {
		if f, ok := FruitFor(value); ok {
			return f.Symbol
		}
	}
	return strconv.Itoa(value)
}

// TileColor returns the color of a tile.
func TileColor(value int) core.Color {
	if value == 0 {
		return core.ColorDefault
	}
	if f, ok := FruitFor(value); ok {
		return f.Color
	}
	return core.ColorBrightWhite
}

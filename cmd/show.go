package cmd

import (
	"fmt"
	"image"
	"image/color" // This is the standard library color package
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"

	"github.com/arcanaland/cardrename/internal/card"
	"github.com/arcanaland/cardrename/internal/classify"
	"github.com/arcanaland/cardrename/internal/config"
	"github.com/arcanaland/cardrename/internal/deck"

	colorize "github.com/fatih/color" // Rename this import to avoid the conflict
	"github.com/spf13/cobra"
)

const maxArtWidth = 40

var showCmd = &cobra.Command{
	Use:   "show [path] [card]",
	Short: "Display a card image from a renamed folder as ANSI art",
	Long: `Show renders a card image from a folder of canonical names as ANSI terminal art.
The card can be given as its canonical name (h_q, back_b) or as any source
name the renamer recognizes (Hearts_12, hertta_12, Joker_Red).

Examples:
  cardrename show ./cards h_q
  cardrename show ./cards Clubs_1
  cardrename show ./cards tausta_sininen`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, name := args[0], args[1]

		stem, err := resolveCardName(name)
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(deckPath, config.ParseExtensions(settings.Extensions...))
		if err != nil {
			return err
		}

		c, imagePath, err := d.GetCard(stem)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		img, err := loadImage(imagePath)
		if err != nil {
			return err
		}

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		displayCard(cmd.OutOrStdout(), c, imagePath, imageToAnsi(img, artWidth(width)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// resolveCardName maps a canonical or source card name to a canonical stem
func resolveCardName(name string) (string, error) {
	if _, ok := card.ParseCanonical(name); ok {
		return name, nil
	}
	if stem, ok := classify.Classify(name); ok {
		return stem, nil
	}
	return "", fmt.Errorf("unrecognized card name: %s", name)
}

// artWidth picks the art width in columns, leaving room for the info block
func artWidth(termWidth int) int {
	w := (termWidth - 4) / 2
	if w > maxArtWidth {
		w = maxArtWidth
	}
	if w < 8 {
		w = 8
	}
	return w
}

// loadImage opens and decodes a card image
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %v", path, err)
	}
	return img, nil
}

// imageToAnsi converts an image to ANSI art that is cols characters wide,
// keeping the aspect ratio. Each character cell holds two vertical pixels.
func imageToAnsi(img image.Image, cols int) string {
	bounds := img.Bounds()
	rows := 1
	if bounds.Dx() > 0 {
		rows = (cols*bounds.Dy() + bounds.Dx()) / (2 * bounds.Dx())
	}
	if rows < 1 {
		rows = 1
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(cols*2), uint(rows*4), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < rows*4; y += 4 {
		for x := 0; x < cols*2; x += 2 {
			// Upper half from the top 2x2 block, lower half from the bottom one
			upper := averageColor(
				makeColor(getColorAt(resized, x, y)), makeColor(getColorAt(resized, x+1, y)),
				makeColor(getColorAt(resized, x, y+1)), makeColor(getColorAt(resized, x+1, y+1)),
			)
			lower := averageColor(
				makeColor(getColorAt(resized, x, y+2)), makeColor(getColorAt(resized, x+1, y+2)),
				makeColor(getColorAt(resized, x, y+3)), makeColor(getColorAt(resized, x+1, y+3)),
			)

			buffer.WriteString(ansiColorString('▀', colorfulToColor(upper), colorfulToColor(lower)))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	x += bounds.Min.X
	y += bounds.Min.Y
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // Return black for out-of-bounds
}

// makeColor converts to colorful, treating transparent pixels as black
func makeColor(c color.Color) colorful.Color {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return col
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}.Clamped()
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI color codes
func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// Convert from uint32 to uint8 (RGBA() returns values in range 0-65535)
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// getSuitSymbol returns the suit glyph for a suit code
func getSuitSymbol(suit string) string {
	switch suit {
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	case card.Diamonds:
		return "♦"
	case card.Hearts:
		return "♥"
	default:
		return "•"
	}
}

// displayCard prints the ANSI art with the card information on its right
func displayCard(out io.Writer, c card.Card, imagePath, ansiArt string) {
	ansiLines := strings.Split(strings.TrimRight(ansiArt, "\n"), "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		// Calculate the visible width (excluding ANSI escape sequences)
		visibleWidth := len([]rune(stripAnsi(line)))
		if visibleWidth > maxAnsiWidth {
			maxAnsiWidth = visibleWidth
		}
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c.Name()))
	infoLines = append(infoLines, colorize.CyanString("ID:   ")+colorize.HiWhiteString("%s", c.ID))
	if !c.IsSpecial() {
		infoLines = append(infoLines, colorize.CyanString("Suit: ")+
			colorize.HiWhiteString("%s %s", c.Suit, getSuitSymbol(c.Suit)))
		infoLines = append(infoLines, colorize.CyanString("Rank: ")+colorize.HiWhiteString("%s", c.Rank))
	}
	infoLines = append(infoLines, colorize.CyanString("File: ")+colorize.HiWhiteString("%s", imagePath))

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing

	fmt.Fprintln(out)

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(out, ansiLines[i])
			visibleWidth := len([]rune(stripAnsi(ansiLines[i])))
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

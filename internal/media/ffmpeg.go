package media

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// DecodeError is returned when ffmpeg rejects the uploaded file. It carries
// the tool's diagnostic output so the client can see what was wrong with
// the input. Decode failures are bad input, not transient faults.
type DecodeError struct {
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("FFmpeg failed: %s", e.Detail)
}

// ExtractAudio converts any FFmpeg-supported input file into a mono 16kHz
// WAV at wavPath, overwriting an existing file. A non-zero exit is surfaced
// as *DecodeError with stderr (falling back to stdout) as the detail.
func ExtractAudio(inputPath, wavPath string) error {
	cmdPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	// ffmpeg -y -i input -ar 16000 -ac 1 output
	cmd := exec.Command(cmdPath,
		"-y",
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		wavPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		if detail == "" {
			detail = "Unknown error"
		}
		log.Printf("[FFmpeg] Decode failed for %s: %v", inputPath, err)
		return &DecodeError{Detail: detail}
	}

	return nil
}

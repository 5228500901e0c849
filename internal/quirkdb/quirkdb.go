// Package quirkdb resolves a loaded ROM to the quirk profile of the
// historical CHIP-8 platform it was written for, using the two-file JSON
// database described in spec.md §6: a SHA-1-digest→program-index map and a
// program list carrying, per digest, the platform(s) it's known to run on.
package quirkdb

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/bradford-hamilton/gochip8/internal/chip8"
)

// program is the shape of one entry in programs.json; only the fields the
// lookup needs are unmarshaled.
type program struct {
	ROMs map[string]struct {
		Platforms []string `json:"platforms"`
	} `json:"roms"`
}

// Resolve hashes rom with SHA-1, looks the digest up in dbDir's
// sha1-hashes.json and programs.json, and — if a platform is found —
// applies it to profile via Profile.ApplyPlatform. Missing or malformed
// database files, or a ROM the database has no entry for, are non-fatal:
// profile is left exactly as it was passed in.
func Resolve(dbDir string, rom []byte, profile *chip8.Profile) {
	digest := sha1Hex(rom)

	hashesRaw, err := os.ReadFile(filepath.Join(dbDir, "sha1-hashes.json"))
	if err != nil {
		return
	}
	var hashes map[string]int
	if err := json.Unmarshal(hashesRaw, &hashes); err != nil {
		return
	}
	index, ok := hashes[digest]
	if !ok {
		return
	}

	programsRaw, err := os.ReadFile(filepath.Join(dbDir, "programs.json"))
	if err != nil {
		return
	}
	var programs []program
	if err := json.Unmarshal(programsRaw, &programs); err != nil {
		return
	}
	if index < 0 || index >= len(programs) {
		return
	}

	entry, ok := programs[index].ROMs[digest]
	if !ok || len(entry.Platforms) == 0 {
		return
	}

	platform := entry.Platforms[0]
	log.Printf("quirkdb: resolved ROM %s to platform %q", digest, platform)
	profile.ApplyPlatform(platform)
}

func sha1Hex(rom []byte) string {
	sum := sha1.Sum(rom)
	return hex.EncodeToString(sum[:])
}

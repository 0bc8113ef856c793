package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// binaryName is the executable inside every release archive.
	binaryName = "aether"

	checksumsAsset = "checksums.txt"

	// maxDownload caps a single release file.
	maxDownload = 256 << 20
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage names one step of an update, in the order they run.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// target is the release file chosen for this platform.
type target struct {
	tag   string
	asset string
	zip   bool
}

func (c *Checker) fileURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", c.downloadBaseURL, c.owner, c.repo, tag, name)
}

// Update installs input.TargetVersion, or the latest release when it is
// empty, over the running executable. progress is called once per stage.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
		}
	}
	if input.CurrentVersion == "" || input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tgt, err := c.resolve(ctx, input, report)
	if err != nil {
		return err
	}

	report(StageDownload, "Downloading %s...", tgt.tag)
	archive, archiveSum, err := c.fetch(ctx, c.fileURL(tgt.tag, tgt.asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	raw, _, err := c.fetch(ctx, c.fileURL(tgt.tag, checksumsAsset))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(raw)[tgt.asset]
	if !ok {
		return fmt.Errorf("no checksum for %s in %s", tgt.asset, checksumsAsset)
	}
	if want != archiveSum {
		return fmt.Errorf("%w: %s is %s, release lists %s", ErrChecksum, tgt.asset, archiveSum, want)
	}

	report(StageExtract, "Extracting binary...")
	bin, err := unpack(archive, tgt.zip)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Applying update...")
	path, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(path, bin, c.goos == "windows"); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tgt.tag)
	return nil
}

// resolve picks the release tag and the archive for the running platform.
func (c *Checker) resolve(ctx context.Context, input *UpdateInput, report func(Stage, string, ...any)) (target, error) {
	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Checking for latest version...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return target{}, fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return target{}, ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := assetNameFor(c.goos, c.goarch)
	if err != nil {
		return target{}, err
	}
	return target{tag: tag, asset: asset, zip: strings.HasSuffix(asset, ".zip")}, nil
}

// assetNameFor follows the release archive naming: one universal archive
// for macOS, one per architecture elsewhere.
func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}

	var osName, ext string
	switch goos {
	case "linux":
		osName, ext = "Linux", ".tar.gz"
	case "windows":
		osName, ext = "Windows", ".zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}

	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	return binaryName + "_" + osName + "_" + arch + ext, nil
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// fetch downloads url and returns the body with its hex SHA-256.
func (c *Checker) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	h := sha256.New()
	body, err := io.ReadAll(io.TeeReader(io.LimitReader(resp.Body, maxDownload+1), h))
	if err != nil {
		return nil, "", err
	}
	if len(body) > maxDownload {
		return nil, "", fmt.Errorf("%s is larger than %d bytes", url, maxDownload)
	}
	return body, hex.EncodeToString(h.Sum(nil)), nil
}

// parseChecksums reads "<sha256>  <file>" lines. Anything else is skipped.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 {
			sums[fields[1]] = strings.ToLower(fields[0])
		}
	}
	return sums
}

func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// unpack returns the aether executable from a release archive.
func unpack(archive []byte, isZip bool) ([]byte, error) {
	if isZip {
		return fromZip(archive, binaryName+".exe")
	}
	return fromTarGz(archive, binaryName)
}

func fromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(io.LimitReader(tr, maxDownload))
		}
	}
}

func fromZip(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(io.LimitReader(rc, maxDownload))
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// install replaces the executable at path with bin, keeping its file mode.
// The new file is staged next to path and renamed over it. A running
// Windows executable cannot be replaced, only renamed, so with moveAside
// the old one is first moved to path+".old".
func install(path string, bin []byte, moveAside bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staged, err := os.CreateTemp(filepath.Dir(path), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	stagedPath := staged.Name()
	defer func() { _ = os.Remove(stagedPath) }()

	_, err = staged.Write(bin)
	if err == nil {
		err = staged.Sync()
	}
	if cerr := staged.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write staging file: %w", err)
	}

	written, err := os.ReadFile(stagedPath)
	if err != nil {
		return fmt.Errorf("re-read staging file: %w", err)
	}
	if sum(written) != sum(bin) {
		return fmt.Errorf("%w: staged file differs from the extracted binary", ErrChecksum)
	}
	if err := os.Chmod(stagedPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	if moveAside {
		old := path + ".old"
		_ = os.Remove(old)
		if err := os.Rename(path, old); err != nil {
			return fmt.Errorf("move old binary aside: %w", err)
		}
	}
	if err := os.Rename(stagedPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

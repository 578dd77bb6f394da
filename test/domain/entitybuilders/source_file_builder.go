//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	doubles "github.com/rios0rios0/asciiscan/test/infrastructure/repositorydoubles"
)

// SourceFileBuilder helps create stub source files with a fluent interface.
type SourceFileBuilder struct {
	*testkit.BaseBuilder
	path    string
	lines   []string
	raw     []byte
	readErr error
}

// NewSourceFileBuilder creates a new source file builder with sensible defaults.
func NewSourceFileBuilder() *SourceFileBuilder {
	return &SourceFileBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "src/index.ts",
	}
}

// WithPath sets the display path.
func (b *SourceFileBuilder) WithPath(path string) *SourceFileBuilder {
	b.path = path
	return b
}

// WithLine appends a line of text; lines are joined with "\n".
func (b *SourceFileBuilder) WithLine(line string) *SourceFileBuilder {
	b.lines = append(b.lines, line)
	return b
}

// WithRawContent sets the exact bytes, overriding any lines.
func (b *SourceFileBuilder) WithRawContent(raw []byte) *SourceFileBuilder {
	b.raw = raw
	return b
}

// WithReadError makes Content fail with err.
func (b *SourceFileBuilder) WithReadError(err error) *SourceFileBuilder {
	b.readErr = err
	return b
}

// Build creates the source file (satisfies testkit.Builder interface).
func (b *SourceFileBuilder) Build() interface{} {
	return b.BuildSourceFile()
}

// BuildSourceFile creates the source file with a concrete return type.
func (b *SourceFileBuilder) BuildSourceFile() *doubles.StubSourceFile {
	data := b.raw
	if data == nil {
		for i, line := range b.lines {
			if i > 0 {
				data = append(data, '\n')
			}
			data = append(data, line...)
		}
	}
	return &doubles.StubSourceFile{
		FilePath: b.path,
		Data:     data,
		ReadErr:  b.readErr,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SourceFileBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "src/index.ts"
	b.lines = nil
	b.raw = nil
	b.readErr = nil
	return b
}

// Clone creates a deep copy of the SourceFileBuilder.
func (b *SourceFileBuilder) Clone() testkit.Builder {
	return &SourceFileBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		lines:       append([]string(nil), b.lines...),
		raw:         append([]byte(nil), b.raw...),
		readErr:     b.readErr,
	}
}

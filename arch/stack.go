package arch

import (
	"bufio"
	"io"
)

// fileNode is one open file on the inclusion stack.
type fileNode struct {
	name    string
	line    int  // 0-based line counter.
	pending bool // The line at 'line' was returned and is not yet counted.
	scanner *bufio.Scanner
	closer  io.Closer
}

// advance counts the most recently returned line.
func (node *fileNode) advance() {
	if node.pending {
		node.line++
		node.pending = false
	}
}

// FileStack turns nested included files into a single stream of lines,
// numbered per file.
type FileStack struct {
	nodes []*fileNode
}

// Push suspends the current file and starts reading a new one. The line of
// the suspended file that caused the push is consumed.
func (fs *FileStack) Push(name string, input io.Reader) {
	if parent, ok := fs.peek(); ok {
		parent.advance()
	}

	node := &fileNode{
		name:    name,
		scanner: bufio.NewScanner(input),
	}
	if closer, ok := input.(io.Closer); ok {
		node.closer = closer
	}

	fs.nodes = append(fs.nodes, node)
}

func (fs *FileStack) peek() (node *fileNode, ok bool) {
	if fs.Empty() {
		return
	}

	return fs.nodes[len(fs.nodes)-1], true
}

// Empty returns true when no file is open.
func (fs *FileStack) Empty() bool {
	return len(fs.nodes) == 0
}

// Depth returns the number of open files.
func (fs *FileStack) Depth() int {
	return len(fs.nodes)
}

// CurrentName returns the name of the active file.
func (fs *FileStack) CurrentName() string {
	node, ok := fs.peek()
	if !ok {
		return ""
	}
	return node.name
}

// CurrentLine returns the 0-based line counter of the active file.
func (fs *FileStack) CurrentLine() int {
	node, ok := fs.peek()
	if !ok {
		return 0
	}
	return node.line
}

// HasParent returns true if a suspended file remains below the active one.
func (fs *FileStack) HasParent() bool {
	return len(fs.nodes) > 1
}

// Next reads the next line of the active file. At the end of the active file
// it returns io.EOF; the caller decides whether to PopToParent.
func (fs *FileStack) Next() (lineno int, text string, err error) {
	node, ok := fs.peek()
	if !ok {
		err = io.EOF
		return
	}

	node.advance()

	if !node.scanner.Scan() {
		err = node.scanner.Err()
		if err != nil {
			err = &ErrIO{Path: node.name, Err: err}
			return
		}
		err = io.EOF
		return
	}

	node.pending = true
	lineno = node.line
	text = node.scanner.Text()

	return
}

// PopToParent closes the active file and resumes the suspended one.
func (fs *FileStack) PopToParent() (err error) {
	node, ok := fs.peek()
	if !ok {
		return
	}

	fs.nodes = fs.nodes[:len(fs.nodes)-1]

	if node.closer != nil {
		err = node.closer.Close()
		if err != nil {
			err = &ErrIO{Path: node.name, Err: err}
		}
	}

	return
}

// Close closes every open file.
func (fs *FileStack) Close() (err error) {
	for !fs.Empty() {
		if perr := fs.PopToParent(); perr != nil && err == nil {
			err = perr
		}
	}

	return
}

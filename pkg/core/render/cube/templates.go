package cube

import (
	"bytes"
	"text/template"
)

const gridMatrixStyle = `
    \tikzset{
        grid matrix/.style={
            nodes in empty cells,
            matrix of nodes,
            column sep=-\pgflinewidth, row sep=-\pgflinewidth,
            nodes={
                rectangle,
                draw=\gridcol,
                minimum height=1cm,
                anchor=center,
                align=center,
                text width=1cm,
                text height=2ex,
                text depth=0.5ex,
                inner sep=0pt,
                outer sep=0pt,
            }
        },
        grid matrix/.default=1.2em
    }
    
`

const (
	beginScope = "\n    \\begin{scope}"
	endScope   = "\n    \\end{scope}"
)

// Invisible rectangles covering the unslanted extents of the top and side
// faces. The slanted faces live in canvas transforms whose extents TikZ does
// not add to the picture's bounding box.
const boundingRegions = `
        \begin{scope}[shift={(-0.5*\z, 0.5 * \x)}]
            \draw[opacity=0] (-0.5* \z, -0.5* \x) rectangle (0.5* \z, 0.5* \x);
        \end{scope}
        
        \begin{scope}[shift={(0.5*\x,-0.5*\y)}]
            \draw[opacity=0] (-0.5* \x,-0.5* \y) rectangle (0.5* \x, 0.5* \y);
        \end{scope}
`

// Face templates use << >> delimiters since TikZ markup is full of braces.
var faceTemplates = template.Must(template.New("faces").Delims("<<", ">>").Parse(`
<<- define "top" >>
        
        \begin{scope}[transform canvas={xslant=\zslant, yscale=\yscale, shift={(-0.5*\z, 0.5 * \x)}, },transform shape]
            \draw[color=black, thick] (-0.5* \z,-0.5* \x) rectangle (0.5* \z, 0.5* \x);
            
            \matrix (<< .Name >>) [grid matrix]{
            << .Body >>};
            \node [above, rotate=90, text width=\x * 1cm, align=center] at (<< .Name >>.west) {\xlab};
        \end{scope}
    << end >>
<<- define "front" >>
        \begin{scope}[shift={(-0.5*\z, -0.5 * \y)}]
            \draw[color=black, thick, fill=\shadecolA] (-0.5* \z,-0.5* \y) rectangle (0.5* \z, 0.5* \y);
            
            \matrix (<< .Name >>) [grid matrix]{
            << .Body >>};
            \node [below, text width=\z * 1cm, align=center] at (<< .Name >>.south) {\zlab};
            \node [above, rotate=90, text width=\y * 1cm, align=center] at (<< .Name >>.west) {\ylab};
            
            \draw[color=black, thick, fill=none] (-0.5* \z,-0.5* \y) rectangle (0.5* \z, 0.5* \y);
        \end{scope}
    << end >>
<<- define "side" >>
        
        \begin{scope}[transform canvas={yslant=1/\zslant, xscale=\yscale*\zslant, shift={(0.5*\x,-0.5*\y)}, },transform shape]
            \draw[color=black, thick] (-0.5* \x,-0.5* \y) rectangle (0.5* \x, 0.5* \y);
            
            \matrix (<< .Name >>) [grid matrix]{
            << .Body >>};
        \end{scope}
    << end >>
<<- define "slice" >>
        \begin{scope}[shift={(-0.5*\z + << .Offset >>, -0.5 * \y + << .Offset >>)}]
            \matrix (<< .Name >>) [grid matrix]{
<< .Body >>};
            \draw[color=black, thick, fill=none] (-0.5* \z,-0.5* \y) rectangle (0.5* \z, 0.5* \y);
        \end{scope}<< end >>
`))

// faceView carries the named values substituted into a face template.
type faceView struct {
	Name   string // TikZ node name of the matrix
	Body   string // formatted matrix body
	Offset int    // diagonal offset of a depth slice
}

func writeFace(buf *bytes.Buffer, tmpl string, v faceView) error {
	return faceTemplates.ExecuteTemplate(buf, tmpl, v)
}

package cube

const (
	documentBegin = `
\documentclass[tikz, margin=0mm]{standalone}
\usetikzlibrary{matrix}
\usepackage{mathdots}

\begin{document}
`
	documentEnd = `
\end{document}
`
	pictureBegin = `
    \begin{tikzpicture}
`
	pictureEnd = `
    \end{tikzpicture}
`
)

// WrapDocument wraps content in a minimal standalone LaTeX document that
// loads TikZ with the matrix library.
func WrapDocument(content string) string {
	return documentBegin + content + documentEnd
}

// WrapPicture wraps content in a tikzpicture environment.
func WrapPicture(content string) string {
	return pictureBegin + content + pictureEnd
}

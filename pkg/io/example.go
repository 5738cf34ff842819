package io

import (
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
)

const exampleDeclarations = `
    \pgfdeclareverticalshading{red_green}{100bp}{
        color(0bp)=(red); color(25bp)=(red); color(75bp)=(green); color(100bp)=(green)
    }

    \pgfdeclareverticalshading{brown_green}{100bp}{
        color(0bp)=(brown); color(25bp)=(brown); color(75bp)=(green); color(100bp)=(green)
    }

    \pgfdeclareverticalshading{brown_red}{100bp}{
        color(0bp)=(brown); color(25bp)=(brown); color(75bp)=(red); color(100bp)=(red)
    }
`

// ExampleSpec returns an annotated k × j × i tensor: elided entries on every
// face, one color per axis and shaded diagonal cells blending the colors of
// the two axes that meet there.
func ExampleSpec() *Spec {
	return &Spec{
		Kind: cube.KindCuboid,
		Labels: &Labels{
			X: `\textcolor{brown}{\textbf{k}}`,
			Y: `\textcolor{red}{\textbf{j}}`,
			Z: `\textcolor{green}{\textbf{i}}`,
		},
		Declarations: exampleDeclarations,
		Front: grid.Grid{
			{`$a_{1,1,1}$`, `$\cdots$`, `$a_{1,1,i}$`},
			{`$\vdots$`, `$\ddots$`, ``},
			{`$a_{1,j,1}$`, ``, `$a_{1,j,i}$`},
		},
		Top: grid.Grid{
			{`$a_{1,1,1}$`, `$\cdots$`, `$a_{k,1,i}$`},
			{`$\vdots$`, `$\iddots$`, ``},
			{`$a_{k,1,1}$`, ``, `$a_{k,1,i}$`},
		},
		Side: grid.Grid{
			{`$a_{1,1,i}$`, `$\cdots$`, `$a_{k,1,i}$`},
			{`$\vdots$`, `$\ddots$`, ``},
			{`$a_{1,j,i}$`, ``, `$a_{k,j,i}$`},
		},
		FrontColors: grid.Grid{
			{"none", "green", "none"},
			{"red", "none, shading=red_green, shading angle= -45", "red"},
			{"none", "green", "none"},
		},
		TopColors: grid.Grid{
			{"none", "green", "none"},
			{"brown", "none, shading=brown_green, shading angle= -45", "brown"},
			{"none", "green", "none"},
		},
		SideColors: grid.Grid{
			{"none", "brown", "none"},
			{"red", "none, shading=brown_red, shading angle= -45", "red"},
			{"none", "brown", "none"},
		},
	}
}

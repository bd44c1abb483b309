// Package scenes contains the explainer scenes shipped with this repo.
// Importing the package (usually for side effects from cmd/isoviz)
// registers every scene with the isoviz scene registry.
//
// Scenes are declarative scripts: they build objects from the style guide
// and play animations on a timeline. Anything algorithmic belongs in the
// root package or the curve package, not here.
package scenes

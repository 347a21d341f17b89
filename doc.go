// Package dragkit attaches drag-gesture behaviors to nodes in a retained
// 2D view tree for [Ebitengine].
//
// A [Behavior] tracks a single pointer drag on a [Node]: while the drag is
// in progress it applies a live translation plus optional rotation and
// scale transforms derived from the drag distance, and when the drag ends
// it either animates the node back to rest or folds the translation into
// a committed offset that persists across gestures.
//
// # Quick start
//
// Create a [Stage], add a node, and attach a behavior:
//
//	stage := dragkit.NewStage()
//	card := dragkit.NewNode("card", 120, 160)
//	stage.Root().AddChild(card)
//
//	dragkit.Attach(card, dragkit.Options{
//		RotationMultiplier: 1,
//		ScaleMultiplier:    1,
//		OnEnded: func(t dragkit.Vec2) {
//			// card released after dragging by t
//		},
//	})
//
// Call [Stage.Update] once per frame from your [ebiten.Game] Update
// method. The stage reads mouse and touch input, recognizes a drag once
// movement exceeds the minimum distance, routes translations to the
// behavior under the pointer, and advances in-flight transitions.
//
// # Transforms
//
// The bound node is transformed scale first, then rotation, then
// translation by the committed plus live offset projected onto the
// allowed axes ([AxesBoth], [AxesHorizontal], [AxesVertical]). Rotation
// and scale are pure functions of the drag translation normalized by
// half the viewport width; see [Options.RotationMultiplier] and
// [Options.ScaleMultiplier].
//
// # Animation
//
// Every state change is applied as one animated transition using the
// configured [Curve] (by default [Spring] with response 0.3 and damping
// 0.8), driven by [gween] tweens.
//
// Headless hosts and tests can inject synthetic pointer sequences with
// [Stage.InjectDrag] or run JSON drag scripts via [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package dragkit

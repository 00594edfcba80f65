package render

// Sink is the renderer-facing contract the Billboard/Trail Projector
// submits draw items to (spec section 6 "Renderer sink"). A concrete
// implementation owns the GPU resources; the projector only ever sees
// this interface, keeping render independent of any particular backend.
// render/ebitensink implements it on top of Ebitengine.
type Sink interface {
	// AddBillboard submits one marker's quad, its texture handle (as
	// returned by activemap's TextureUploader), and the camera distance
	// used for depth sorting.
	AddBillboard(vertices [6]Vertex, textureHandle any, distance float32)

	// AddTrail submits one trail's precomputed ribbon and texture handle.
	AddTrail(vertices []Vertex, textureHandle any)

	// ZNear reports the renderer's current near-plane distance, read
	// back by the projector for the billboard pixel-clamp derivation
	// (spec section 4.5 step 4).
	ZNear() float32
}

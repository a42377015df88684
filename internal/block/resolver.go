package block

// Resolver turns an id and data pair into a voxel. The schematic decoder uses
// it for every id without a tile entity kind.
type Resolver interface {
	Resolve(id uint16, data uint8) (Block, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(id uint16, data uint8) (Block, error)

// Resolve calls f(id, data).
func (f ResolverFunc) Resolve(id uint16, data uint8) (Block, error) {
	return f(id, data)
}

// DefaultResolver builds voxels with New.
var DefaultResolver Resolver = ResolverFunc(func(id uint16, data uint8) (Block, error) {
	return New(id, data), nil
})

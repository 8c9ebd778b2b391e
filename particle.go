package tessera

// ParticleType is the wire tag identifying how the server stores and
// interprets a bin value.
type ParticleType int

const (
	ParticleTypeNull    ParticleType = 0
	ParticleTypeInteger ParticleType = 1
	ParticleTypeFloat   ParticleType = 2
	ParticleTypeString  ParticleType = 3
	ParticleTypeBlob    ParticleType = 4
	ParticleTypeDigest  ParticleType = 6
	ParticleTypeBool    ParticleType = 17
	ParticleTypeHLL     ParticleType = 18
	ParticleTypeMap     ParticleType = 19
	ParticleTypeList    ParticleType = 20
	ParticleTypeGeoJSON ParticleType = 23
)

package core

// Entity is a handle issued by the world for structures and enemies
// Zero is never issued and means "no entity"
type Entity uint64

// None is the null handle
const None Entity = 0

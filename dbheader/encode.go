package dbheader

import (
	"sqlite-header/dbheader/lbytes"
)

// Encode lays out header the way Decode expects to find it. Byte regions are
// zero padded or truncated to their fixed width, so the result is always
// HeaderSize bytes long.
func Encode(header Header) []byte {
	bs := make([]byte, 0, HeaderSize)
	bs = append(bs, lbytes.EncodeFixed(header.Magic, 16)...)
	bs = append(bs, lbytes.EncodeUint16(header.PageSize)...)
	bs = append(bs, header.WriteVersion)
	bs = append(bs, header.ReadVersion)
	bs = append(bs, header.ReservedSpace)
	bs = append(bs, header.MaxPayloadFraction)
	bs = append(bs, header.MinPayloadFraction)
	bs = append(bs, header.LeafPayloadFraction)
	bs = append(bs, lbytes.EncodeUint32(header.ChangeCounter)...)
	bs = append(bs, lbytes.EncodeUint32(header.PageCount)...)
	bs = append(bs, lbytes.EncodeUint32(header.FreelistTrunkPage)...)
	bs = append(bs, lbytes.EncodeUint32(header.FreelistPageCount)...)
	bs = append(bs, lbytes.EncodeUint32(header.SchemaCookie)...)
	bs = append(bs, lbytes.EncodeUint32(header.SchemaFormat)...)
	bs = append(bs, lbytes.EncodeUint32(header.DefaultCacheSize)...)
	bs = append(bs, lbytes.EncodeUint32(header.LargestRootPage)...)
	bs = append(bs, lbytes.EncodeUint32(header.TextEncoding)...)
	bs = append(bs, lbytes.EncodeUint32(header.UserVersion)...)
	bs = append(bs, lbytes.EncodeUint32(header.IncrementalVacuum)...)
	bs = append(bs, lbytes.EncodeUint32(header.ApplicationID)...)
	bs = append(bs, lbytes.EncodeFixed(header.ReservedExpansion, 20)...)
	bs = append(bs, lbytes.EncodeUint32(header.VersionValidFor)...)
	bs = append(bs, lbytes.EncodeUint32(header.SQLiteVersionNumber)...)
	return bs
}

// Default returns a header holding the values a freshly created database
// would carry.
func Default() Header {
	return Header{
		Magic:               lbytes.EncodeFixed(MagicBytes, 16),
		PageSize:            4096,
		WriteVersion:        1,
		ReadVersion:         1,
		ReservedSpace:       0,
		MaxPayloadFraction:  MaxPayloadFraction,
		MinPayloadFraction:  MinPayloadFraction,
		LeafPayloadFraction: LeafPayloadFraction,
		PageCount:           1,
		SchemaFormat:        4,
		TextEncoding:        TextEncodingUTF8,
		ReservedExpansion:   make([]byte, 20),
	}
}

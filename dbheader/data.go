// Package dbheader decodes and validates the fixed 100-byte header found at
// the start of every SQLite 3 database file.
package dbheader

type (
	// Header holds every field of the database header exactly as encoded.
	// Multi-byte integers are stored big-endian on disk.
	Header struct {
		Magic               []byte `json:"magic"`
		PageSize            uint16 `json:"page_size"`
		WriteVersion        uint8  `json:"write_version"`
		ReadVersion         uint8  `json:"read_version"`
		ReservedSpace       uint8  `json:"reserved_space"`
		MaxPayloadFraction  uint8  `json:"max_payload_fraction"`
		MinPayloadFraction  uint8  `json:"min_payload_fraction"`
		LeafPayloadFraction uint8  `json:"leaf_payload_fraction"`
		ChangeCounter       uint32 `json:"change_counter"`
		PageCount           uint32 `json:"page_count"`
		FreelistTrunkPage   uint32 `json:"freelist_trunk_page"`
		FreelistPageCount   uint32 `json:"freelist_page_count"`
		SchemaCookie        uint32 `json:"schema_cookie"`
		SchemaFormat        uint32 `json:"schema_format"`
		DefaultCacheSize    uint32 `json:"default_cache_size"`
		LargestRootPage     uint32 `json:"largest_root_page"`
		TextEncoding        uint32 `json:"text_encoding"`
		UserVersion         uint32 `json:"user_version"`
		IncrementalVacuum   uint32 `json:"incremental_vacuum"`
		ApplicationID       uint32 `json:"application_id"`
		ReservedExpansion   []byte `json:"reserved_expansion"`
		VersionValidFor     uint32 `json:"version_valid_for"`
		SQLiteVersionNumber uint32 `json:"sqlite_version_number"`
	}
	// Field describes where a header field lives and how it is labelled.
	Field struct {
		Key         string
		Offset      int
		Size        int
		Description string
	}
)

const (
	HeaderSize = 100

	FieldNameMagic               = "magic"
	FieldNamePageSize            = "page_size"
	FieldNameWriteVersion        = "write_version"
	FieldNameReadVersion         = "read_version"
	FieldNameReservedSpace       = "reserved_space"
	FieldNameMaxPayloadFraction  = "max_payload_fraction"
	FieldNameMinPayloadFraction  = "min_payload_fraction"
	FieldNameLeafPayloadFraction = "leaf_payload_fraction"
	FieldNameChangeCounter       = "change_counter"
	FieldNamePageCount           = "page_count"
	FieldNameFreelistTrunkPage   = "freelist_trunk_page"
	FieldNameFreelistPageCount   = "freelist_page_count"
	FieldNameSchemaCookie        = "schema_cookie"
	FieldNameSchemaFormat        = "schema_format"
	FieldNameDefaultCacheSize    = "default_cache_size"
	FieldNameLargestRootPage     = "largest_root_page"
	FieldNameTextEncoding        = "text_encoding"
	FieldNameUserVersion         = "user_version"
	FieldNameIncrementalVacuum   = "incremental_vacuum"
	FieldNameApplicationID       = "application_id"
	FieldNameReservedExpansion   = "reserved_expansion"
	FieldNameVersionValidFor     = "version_valid_for"
	FieldNameSQLiteVersionNumber = "sqlite_version_number"

	MaxPayloadFraction  = 64
	MinPayloadFraction  = 32
	LeafPayloadFraction = 32

	MinPageSize = 512
	MaxPageSize = 32768
	// PageSizeMax is the stored value 1, which stands for 65536.
	PageSizeMax = 65536

	TextEncodingUTF8    = 1
	TextEncodingUTF16LE = 2
	TextEncodingUTF16BE = 3
)

var (
	MagicBytes = []byte("SQLite format 3\x00")

	// Fields lists the header layout in offset order.
	Fields = []Field{
		{FieldNameMagic, 0, 16, "Header string"},
		{FieldNamePageSize, 16, 2, "Page size in bytes"},
		{FieldNameWriteVersion, 18, 1, "File format write version"},
		{FieldNameReadVersion, 19, 1, "File format read version"},
		{FieldNameReservedSpace, 20, 1, "Bytes of unused 'reserved' space at the end of each page"},
		{FieldNameMaxPayloadFraction, 21, 1, "Max embedded payload fraction. Must be 64"},
		{FieldNameMinPayloadFraction, 22, 1, "Min embedded payload fraction. Must be 32"},
		{FieldNameLeafPayloadFraction, 23, 1, "Leaf payload fraction. Must be 32"},
		{FieldNameChangeCounter, 24, 4, "File change counter"},
		{FieldNamePageCount, 28, 4, "Size of database file in pages"},
		{FieldNameFreelistTrunkPage, 32, 4, "Page number of first freelist trunk page"},
		{FieldNameFreelistPageCount, 36, 4, "Total number of freelist pages"},
		{FieldNameSchemaCookie, 40, 4, "The schema cookie"},
		{FieldNameSchemaFormat, 44, 4, "The schema format number"},
		{FieldNameDefaultCacheSize, 48, 4, "Default page cache size"},
		{FieldNameLargestRootPage, 52, 4, "The page number of the largest root b-tree page when in auto-vacuum or incremental-vacuum modes, or zero otherwise"},
		{FieldNameTextEncoding, 56, 4, "The database text encoding. A value of 1 means UTF-8"},
		{FieldNameUserVersion, 60, 4, `The "user version" as read and set by the user_version pragma.`},
		{FieldNameIncrementalVacuum, 64, 4, "True (non-zero) for incremental-vacuum mode. False (zero) otherwise."},
		{FieldNameApplicationID, 68, 4, `The "Application ID" set by PRAGMA application_id.`},
		{FieldNameReservedExpansion, 72, 20, "Reserved for expansion. Must be zero"},
		{FieldNameVersionValidFor, 92, 4, "The version-valid-for number"},
		{FieldNameSQLiteVersionNumber, 96, 4, "SQLITE_VERSION_NUMBER"},
	}
)

package dbheader

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/samber/lo"

	"sqlite-header/ds"
)

func (h Header) PageSizeBytes() int {
	if h.PageSize == 1 {
		return PageSizeMax
	}
	return int(h.PageSize)
}

func (h Header) IsIncrementalVacuum() bool {
	return h.IncrementalVacuum != 0
}

func (h Header) TextEncodingName() string {
	switch h.TextEncoding {
	case TextEncodingUTF8:
		return "UTF-8"
	case TextEncodingUTF16LE:
		return "UTF-16le"
	case TextEncodingUTF16BE:
		return "UTF-16be"
	default:
		return "unknown"
	}
}

// JournalMode names the mode implied by the file format versions: 1 for
// legacy rollback journals, 2 for WAL.
func (h Header) JournalMode() string {
	switch {
	case h.WriteVersion == 1 && h.ReadVersion == 1:
		return "legacy"
	case h.WriteVersion == 2 && h.ReadVersion == 2:
		return "WAL"
	default:
		return "unknown"
	}
}

// SQLiteVersion renders SQLiteVersionNumber (X*1000000 + Y*1000 + Z) as X.Y.Z.
func (h Header) SQLiteVersion() string {
	n := h.SQLiteVersionNumber
	return fmt.Sprintf("%d.%d.%d", n/1000000, n/1000%1000, n%1000)
}

// ToLinkedHashMap returns the header fields keyed by field name, in offset
// order. Byte regions are rendered as strings so the map reads well as JSON.
func ToLinkedHashMap(h Header) *ds.LinkedHashMap[string, any] {
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put(FieldNameMagic, string(bytes.TrimRight(h.Magic, "\x00")))
	lhm.Put(FieldNamePageSize, h.PageSize)
	lhm.Put(FieldNameWriteVersion, h.WriteVersion)
	lhm.Put(FieldNameReadVersion, h.ReadVersion)
	lhm.Put(FieldNameReservedSpace, h.ReservedSpace)
	lhm.Put(FieldNameMaxPayloadFraction, h.MaxPayloadFraction)
	lhm.Put(FieldNameMinPayloadFraction, h.MinPayloadFraction)
	lhm.Put(FieldNameLeafPayloadFraction, h.LeafPayloadFraction)
	lhm.Put(FieldNameChangeCounter, h.ChangeCounter)
	lhm.Put(FieldNamePageCount, h.PageCount)
	lhm.Put(FieldNameFreelistTrunkPage, h.FreelistTrunkPage)
	lhm.Put(FieldNameFreelistPageCount, h.FreelistPageCount)
	lhm.Put(FieldNameSchemaCookie, h.SchemaCookie)
	lhm.Put(FieldNameSchemaFormat, h.SchemaFormat)
	lhm.Put(FieldNameDefaultCacheSize, h.DefaultCacheSize)
	lhm.Put(FieldNameLargestRootPage, h.LargestRootPage)
	lhm.Put(FieldNameTextEncoding, h.TextEncoding)
	lhm.Put(FieldNameUserVersion, h.UserVersion)
	lhm.Put(FieldNameIncrementalVacuum, h.IncrementalVacuum)
	lhm.Put(FieldNameApplicationID, h.ApplicationID)
	lhm.Put(FieldNameReservedExpansion, hex.EncodeToString(h.ReservedExpansion))
	lhm.Put(FieldNameVersionValidFor, h.VersionValidFor)
	lhm.Put(FieldNameSQLiteVersionNumber, h.SQLiteVersionNumber)
	return lhm
}

// FieldByKey looks a field up in Fields.
func FieldByKey(key string) (Field, bool) {
	return lo.Find(
		Fields,
		func(field Field) bool {
			return field.Key == key
		},
	)
}

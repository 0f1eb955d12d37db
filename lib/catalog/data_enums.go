package catalog

import (
	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

// --------------------------------------------------------------------------
// Simple
// --------------------------------------------------------------------------

// Simple is a data enum with the variants First and Second
type Simple interface {
	isSimple()
}

type First struct {
	FirstField uint32 `json:"first_field" yaml:"first_field"`
}

type Second struct {
	SecondField uint32 `json:"second_field" yaml:"second_field"`
}

func (First) isSimple()  {}
func (Second) isSimple() {}

func (f First) MarshalJSON() ([]byte, error) {
	type plain First
	return borsh.TaggedJSON("First", plain(f))
}

func (f First) MarshalYAML() (any, error) {
	type plain First
	return borsh.TaggedYAML("First", plain(f))
}

func (s Second) MarshalJSON() ([]byte, error) {
	type plain Second
	return borsh.TaggedJSON("Second", plain(s))
}

func (s Second) MarshalYAML() (any, error) {
	type plain Second
	return borsh.TaggedYAML("Second", plain(s))
}

var simpleCodec = borsh.DataEnum[Simple](
	borsh.VariantOf[Simple](borsh.Struct(
		borsh.FieldOf("first_field", borsh.U32, func(f *First) *uint32 { return &f.FirstField }),
	)),
	borsh.VariantOf[Simple](borsh.Struct(
		borsh.FieldOf("second_field", borsh.U32, func(s *Second) *uint32 { return &s.SecondField }),
	)),
)

// --------------------------------------------------------------------------
// CollectionInfo
// --------------------------------------------------------------------------

// CollectionInfo is a data enum modelled after NFT collection metadata
type CollectionInfo interface {
	isCollectionInfo()
}

type CollectionInfoV1 struct {
	Symbol           string      `json:"symbol" yaml:"symbol"`
	VerifiedCreators borsh.Bytes `json:"verified_creators" yaml:"verified_creators"`
	WhitelistRoot    borsh.Bytes `json:"whitelist_root" yaml:"whitelist_root"`
}

type CollectionInfoV2 struct {
	CollectionMint uint8 `json:"collection_mint" yaml:"collection_mint"`
}

func (CollectionInfoV1) isCollectionInfo() {}
func (CollectionInfoV2) isCollectionInfo() {}

func (c CollectionInfoV1) MarshalJSON() ([]byte, error) {
	type plain CollectionInfoV1
	return borsh.TaggedJSON("V1", plain(c))
}

func (c CollectionInfoV1) MarshalYAML() (any, error) {
	type plain CollectionInfoV1
	return borsh.TaggedYAML("V1", plain(c))
}

func (c CollectionInfoV2) MarshalJSON() ([]byte, error) {
	type plain CollectionInfoV2
	return borsh.TaggedJSON("V2", plain(c))
}

func (c CollectionInfoV2) MarshalYAML() (any, error) {
	type plain CollectionInfoV2
	return borsh.TaggedYAML("V2", plain(c))
}

// whitelistRootSize is the length of the fixed size whitelist root
const whitelistRootSize = 32

var collectionInfoCodec = borsh.DataEnum[CollectionInfo](
	borsh.VariantOf[CollectionInfo](borsh.Struct(
		borsh.FieldOf("symbol", borsh.String, func(c *CollectionInfoV1) *string { return &c.Symbol }),
		borsh.FieldOf("verified_creators", borsh.ByteVec, func(c *CollectionInfoV1) *borsh.Bytes { return &c.VerifiedCreators }),
		borsh.FieldOf("whitelist_root", borsh.FixedBytes(whitelistRootSize), func(c *CollectionInfoV1) *borsh.Bytes { return &c.WhitelistRoot }),
	)),
	borsh.VariantOf[CollectionInfo](borsh.Struct(
		borsh.FieldOf("collection_mint", borsh.U8, func(c *CollectionInfoV2) *uint8 { return &c.CollectionMint }),
	)),
)

func produceDataEnums(p *samples.Producer) (*samples.Category, error) {
	collections, err := samples.Produce(p, "collections", collectionInfoCodec,
		CollectionInfo(CollectionInfoV1{
			Symbol:           "TEST",
			VerifiedCreators: borsh.Bytes{1, 2, 3},
			WhitelistRoot:    make(borsh.Bytes, whitelistRootSize),
		}),
		CollectionInfo(CollectionInfoV2{CollectionMint: 4}),
	)
	if err != nil {
		return nil, err
	}
	simples, err := samples.Produce(p, "simples", simpleCodec,
		Simple(First{FirstField: 11}),
		Simple(Second{SecondField: 22}),
	)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("collections", collections).
		With("simples", simples), nil
}

package tokenlist_test

import (
	"bytes"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tokenlist "github.com/telcoin/token-list"
)

const minimalListJSON = `{
  "name": "TELcoins",
  "timestamp": "2021-07-05T20:25:22+00:00",
  "version": { "major": 0, "minor": 1, "patch": 0 },
  "tokens": [
    {
      "name": "Telcoin",
      "symbol": "TEL",
      "address": "0x467bccd9d29f223bce8043b84e8c8b282827790f",
      "chainId": 1,
      "decimals": 2
    }
  ]
}`

const fullListJSON = `{
  "name": "TELcoins",
  "timestamp": "2021-07-05T20:25:22+00:00",
  "version": { "major": 0, "minor": 1, "patch": 0 },
  "logoURI": "https://raw.githubusercontent.com/telcoin/token-lists/master/assets/logo-telcoin-250x250.png",
  "keywords": ["defi", "telcoin"],
  "tags": {
    "telcoin": {
      "name": "telcoin",
      "description": "Part of the Telcoin ecosystem."
    }
  },
  "tokens": [
    {
      "name": "Telcoin",
      "symbol": "TEL",
      "address": "0x467bccd9d29f223bce8043b84e8c8b282827790f",
      "chainId": 1,
      "decimals": 2,
      "logoURI": "https://raw.githubusercontent.com/telcoin/token-lists/master/assets/logo-telcoin-250x250.png",
      "tags": ["telcoin"],
      "extensions": {
        "is_mapped_to_matic": true,
        "matic_address": "0xdf7837de1f2fa4631d716cf2502f8b230f1dcc32",
        "matic_chain_id": 137
      }
    }
  ]
}`

var _ = Describe("TokenList", func() {
	It("round-trips a document containing only required fields", func() {
		var list tokenlist.TokenList
		Expect(json.Unmarshal([]byte(minimalListJSON), &list)).To(Succeed())

		Expect(list.Name).To(Equal("TELcoins"))
		Expect(list.Timestamp.Equal(time.Date(2021, time.July, 5, 20, 25, 22, 0, time.UTC))).To(BeTrue())
		Expect(list.Version.Compare(tokenlist.NewVersion(0, 1, 0))).To(Equal(0))
		Expect(list.LogoURI).To(BeNil())
		Expect(list.Keywords).To(BeEmpty())
		Expect(list.Tags).To(BeEmpty())
		Expect(list.Tokens).To(HaveLen(1))

		token := list.Tokens[0]
		Expect(token.Name).To(Equal("Telcoin"))
		Expect(token.Symbol).To(Equal("TEL"))
		Expect(token.Address).To(Equal("0x467bccd9d29f223bce8043b84e8c8b282827790f"))
		Expect(token.ChainID).To(Equal(uint32(1)))
		Expect(token.Decimals).To(Equal(uint16(2)))
		Expect(token.LogoURI).To(BeNil())
		Expect(token.Tags).To(BeEmpty())
		Expect(token.Extensions).To(BeEmpty())

		encoded, err := json.Marshal(list)
		Expect(err).ToNot(HaveOccurred())
		Expect(encoded).To(MatchJSON(minimalListJSON))
	})

	It("round-trips a document containing all fields", func() {
		var list tokenlist.TokenList
		Expect(json.Unmarshal([]byte(fullListJSON), &list)).To(Succeed())

		Expect(list.LogoURI).ToNot(BeNil())
		Expect(list.LogoURI.IsAbs()).To(BeTrue())
		Expect(list.LogoURI.String()).To(Equal("https://raw.githubusercontent.com/telcoin/token-lists/master/assets/logo-telcoin-250x250.png"))
		Expect(list.Keywords).To(Equal([]string{"defi", "telcoin"}))
		Expect(list.Tags).To(HaveLen(1))
		Expect(list.Tags["telcoin"]).To(Equal(tokenlist.Tag{
			Name:        "telcoin",
			Description: "Part of the Telcoin ecosystem.",
		}))

		Expect(list.Tokens).To(HaveLen(1))
		token := list.Tokens[0]
		Expect(token.LogoURI).ToNot(BeNil())
		Expect(token.Tags).To(Equal([]string{"telcoin"}))
		Expect(token.Extensions).To(HaveLen(3))

		mapped := token.Extensions["is_mapped_to_matic"]
		Expect(mapped).ToNot(BeNil())
		mappedValue, isBool := mapped.AsBool()
		Expect(isBool).To(BeTrue())
		Expect(mappedValue).To(BeTrue())

		address := token.Extensions["matic_address"]
		Expect(address).ToNot(BeNil())
		addressValue, isString := address.AsString()
		Expect(isString).To(BeTrue())
		Expect(addressValue).To(Equal("0xdf7837de1f2fa4631d716cf2502f8b230f1dcc32"))

		chainID := token.Extensions["matic_chain_id"]
		Expect(chainID).ToNot(BeNil())
		chainIDValue, isInteger := chainID.AsInt64()
		Expect(isInteger).To(BeTrue())
		Expect(chainIDValue).To(Equal(int64(137)))

		encoded, err := json.Marshal(list)
		Expect(err).ToNot(HaveOccurred())
		Expect(encoded).To(MatchJSON(fullListJSON))
	})

	It("encodes fields in the declared wire order", func() {
		list := tokenlist.TokenList{
			Name:      "TELcoins",
			Timestamp: tokenlist.NewTimestamp(time.Date(2021, time.July, 5, 20, 25, 22, 0, time.UTC)),
			Version:   tokenlist.NewVersion(0, 1, 0),
			Tokens: []tokenlist.Token{
				{
					Name:     "Telcoin",
					Symbol:   "TEL",
					Address:  "0x467bccd9d29f223bce8043b84e8c8b282827790f",
					ChainID:  1,
					Decimals: 2,
				},
			},
		}

		encoded, err := json.Marshal(list)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(encoded)).To(Equal(`{"name":"TELcoins","timestamp":"2021-07-05T20:25:22+00:00","version":{"major":0,"minor":1,"patch":0},"tokens":[{"name":"Telcoin","symbol":"TEL","address":"0x467bccd9d29f223bce8043b84e8c8b282827790f","chainId":1,"decimals":2}]}`))
	})

	It("omits empty collections rather than encoding empty markers", func() {
		list := tokenlist.TokenList{
			Name:      "Empty",
			Timestamp: tokenlist.NewTimestamp(time.Date(2021, time.July, 5, 20, 25, 22, 0, time.UTC)),
			Version:   tokenlist.NewVersion(1, 0, 0),
			Keywords:  []string{},
			Tags:      map[string]tokenlist.Tag{},
			Tokens:    []tokenlist.Token{},
		}

		encoded, err := json.Marshal(list)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(encoded)).ToNot(ContainSubstring(`"keywords"`))
		Expect(string(encoded)).ToNot(ContainSubstring(`"tags"`))
		Expect(string(encoded)).ToNot(ContainSubstring(`"tokens"`))
		Expect(string(encoded)).ToNot(ContainSubstring(`"logoURI"`))
	})

	It("always emits required scalar fields, even when logically empty", func() {
		list := tokenlist.TokenList{
			Timestamp: tokenlist.NewTimestamp(time.Date(2021, time.July, 5, 20, 25, 22, 0, time.UTC)),
			Version:   tokenlist.NewVersion(0, 0, 0),
		}

		encoded, err := json.Marshal(list)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(encoded)).To(ContainSubstring(`"name":""`))
	})

	It("defaults omitted collections to empty rather than failing", func() {
		doc := `{
			"name": "Sparse",
			"timestamp": "2021-07-05T20:25:22+00:00",
			"version": { "major": 2, "minor": 0, "patch": 1 }
		}`

		var list tokenlist.TokenList
		Expect(json.Unmarshal([]byte(doc), &list)).To(Succeed())
		Expect(list.Keywords).To(BeEmpty())
		Expect(list.Tags).To(BeEmpty())
		Expect(list.Tokens).To(BeEmpty())
	})

	When("a required field is missing", func() {
		It("fails, naming the missing field", func() {
			cases := map[string]string{
				"name":      `{"timestamp": "2021-07-05T20:25:22+00:00", "version": {"major": 0, "minor": 1, "patch": 0}}`,
				"timestamp": `{"name": "TELcoins", "version": {"major": 0, "minor": 1, "patch": 0}}`,
				"version":   `{"name": "TELcoins", "timestamp": "2021-07-05T20:25:22+00:00"}`,
			}

			for fieldName, doc := range cases {
				var list tokenlist.TokenList
				err := json.Unmarshal([]byte(doc), &list)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(fieldName))
			}
		})
	})

	When("the logoURI is not an absolute URI", func() {
		It("fails to decode", func() {
			doc := `{
				"name": "TELcoins",
				"timestamp": "2021-07-05T20:25:22+00:00",
				"version": { "major": 0, "minor": 1, "patch": 0 },
				"logoURI": "assets/logo.png"
			}`

			var list tokenlist.TokenList
			err := json.Unmarshal([]byte(doc), &list)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logoURI"))
		})
	})

	When("a tag is missing its description", func() {
		It("fails to decode", func() {
			doc := `{
				"name": "TELcoins",
				"timestamp": "2021-07-05T20:25:22+00:00",
				"version": { "major": 0, "minor": 1, "patch": 0 },
				"tags": { "telcoin": { "name": "telcoin" } }
			}`

			var list tokenlist.TokenList
			err := json.Unmarshal([]byte(doc), &list)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("description"))
		})
	})

	It("preserves token order exactly as given", func() {
		doc := `{
			"name": "Ordered",
			"timestamp": "2021-07-05T20:25:22+00:00",
			"version": { "major": 0, "minor": 1, "patch": 0 },
			"tokens": [
				{"name": "Zeta", "symbol": "ZZZ", "address": "0x02", "chainId": 137, "decimals": 18},
				{"name": "Alpha", "symbol": "AAA", "address": "0x01", "chainId": 1, "decimals": 6}
			]
		}`

		var list tokenlist.TokenList
		Expect(json.Unmarshal([]byte(doc), &list)).To(Succeed())
		Expect(list.Tokens).To(HaveLen(2))
		Expect(list.Tokens[0].Symbol).To(Equal("ZZZ"))
		Expect(list.Tokens[1].Symbol).To(Equal("AAA"))
	})
})

var _ = Describe("Parse", func() {
	It("decodes a document from a reader", func() {
		list, err := tokenlist.Parse(bytes.NewReader([]byte(minimalListJSON)))
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Name).To(Equal("TELcoins"))
	})

	It("tolerates a leading UTF-8 BOM", func() {
		source := append([]byte{0xEF, 0xBB, 0xBF}, []byte(minimalListJSON)...)
		list, err := tokenlist.Parse(bytes.NewReader(source))
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Tokens).To(HaveLen(1))
	})

	It("fails on malformed JSON", func() {
		list, err := tokenlist.Parse(bytes.NewReader([]byte(`{"name": "broken"`)))
		Expect(list).To(BeNil())
		Expect(err).To(HaveOccurred())
	})
})

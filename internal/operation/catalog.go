package operation

// Identifier slots shared across operations. Descriptions are what the MCP
// client's model reads when filling in tool arguments.
var (
	slotTransactionHash = Slot{
		Name:        "transaction_hash",
		Description: "the transaction hash to query",
		Kind:        SlotString,
	}
	slotNumberOrHash = Slot{
		Name:        "number_or_hash",
		Description: "the block number or block hash to query",
		Kind:        SlotString,
	}
	slotAddressHash = Slot{
		Name:        "address_hash",
		Description: "the address hash to query",
		Kind:        SlotString,
	}
	slotTokenAddress = Slot{
		Name:        "token_address",
		Description: "the token address to query",
		Kind:        SlotString,
	}
	slotTokenID = Slot{
		Name:        "token_id",
		Description: "the token id to query",
		Kind:        SlotNumber,
	}
)

var (
	filterDirection = Filter{
		Name:        "filter",
		Description: "filter transfers by direction relative to the address: 'to' or 'from'",
	}
	filterTokenType = Filter{
		Name:        "type",
		Description: "comma separated token type filter, e.g. 'ERC-20,ERC-721,ERC-1155'",
	}
)

// catalog is the full table of explorer API operations exposed as tools.
// Each entry maps one tool onto one GET against {explorer}api/v2/{path}.
var catalog = []Operation{
	{
		Name:        "search",
		Description: "Search chain data with token name, token symbol, account name, address, transaction hash",
		Path:        "search",
		Filters: []Filter{{
			Name:        "q",
			Description: "the query to search, it can be token name, token symbol, address, transaction hash, block number, block hash",
			Required:    true,
		}},
	},
	{
		Name:        "get_transactions",
		Description: "List latest 50 transactions",
		Path:        "transactions",
		Filters: []Filter{
			{Name: "filter", Description: "filter by transaction state: 'pending' or 'validated'"},
			{Name: "type", Description: "comma separated transaction type filter, e.g. 'token_transfer,contract_creation,contract_call,coin_transfer,token_creation'"},
			{Name: "method", Description: "comma separated method filter, e.g. 'approve,transfer,multicall,mint,commit'"},
		},
	},
	{
		Name:        "get_blocks",
		Description: "List latest 50 blocks",
		Path:        "blocks",
		Filters: []Filter{
			{Name: "type", Description: "block type filter: 'block', 'uncle' or 'reorg'"},
		},
	},
	{
		Name:        "get_transfers",
		Description: "List latest 50 token transfers",
		Path:        "token-transfers",
	},
	{
		Name:        "get_internal_transactions",
		Description: "List latest 50 internal transactions",
		Path:        "internal-transactions",
	},
	{
		Name:        "get_withdrawals",
		Description: "List latest 50 withdrawals",
		Path:        "withdrawals",
	},
	{
		Name:        "get_chain_stats",
		Description: "Get chain stats counters",
		Path:        "stats",
	},
	{
		Name:        "get_transaction_info",
		Description: "Get transaction info",
		Path:        "transactions/{transaction_hash}",
		Slots:       []Slot{slotTransactionHash},
	},
	{
		Name:        "get_transaction_token_transfers",
		Description: "Get transaction token transfers",
		Path:        "transactions/{transaction_hash}/token-transfers",
		Slots:       []Slot{slotTransactionHash},
		Filters:     []Filter{filterTokenType},
	},
	{
		Name:        "get_transaction_internal_transactions",
		Description: "Get transaction internal transactions",
		Path:        "transactions/{transaction_hash}/internal-transactions",
		Slots:       []Slot{slotTransactionHash},
	},
	{
		Name:        "get_transaction_logs",
		Description: "Get transaction logs",
		Path:        "transactions/{transaction_hash}/logs",
		Slots:       []Slot{slotTransactionHash},
	},
	{
		Name:        "get_transaction_summary",
		Description: "Get transaction summary",
		Path:        "transactions/{transaction_hash}/summary",
		Slots:       []Slot{slotTransactionHash},
	},
	{
		Name:        "get_block_info",
		Description: "Get block info",
		Path:        "blocks/{number_or_hash}",
		Slots:       []Slot{slotNumberOrHash},
	},
	{
		Name:        "get_block_transactions",
		Description: "Get block transactions",
		Path:        "blocks/{number_or_hash}/transactions",
		Slots:       []Slot{slotNumberOrHash},
	},
	{
		Name:        "get_block_withdrawals",
		Description: "Get block withdrawals",
		Path:        "blocks/{number_or_hash}/withdrawals",
		Slots:       []Slot{slotNumberOrHash},
	},
	{
		Name:        "get_addresses",
		Description: "List top 50 native coin holders",
		Path:        "addresses",
	},
	{
		Name:        "get_address_info",
		Description: "Get address info",
		Path:        "addresses/{address_hash}",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_counters",
		Description: "Get address counters",
		Path:        "addresses/{address_hash}/counters",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_transactions",
		Description: "List latest 50 transactions of the address",
		Path:        "addresses/{address_hash}/transactions",
		Slots:       []Slot{slotAddressHash},
		Filters:     []Filter{filterDirection},
	},
	{
		Name:        "get_address_token_transfers",
		Description: "List latest 50 token transfers of the address",
		Path:        "addresses/{address_hash}/token-transfers",
		Slots:       []Slot{slotAddressHash},
		Filters: []Filter{
			filterTokenType,
			filterDirection,
			{Name: "token", Description: "restrict transfers to a single token contract address"},
		},
	},
	{
		Name:        "get_address_internal_transactions",
		Description: "List latest 50 internal transactions of the address",
		Path:        "addresses/{address_hash}/internal-transactions",
		Slots:       []Slot{slotAddressHash},
		Filters:     []Filter{filterDirection},
	},
	{
		Name:        "get_address_logs",
		Description: "List latest 50 logs emitted by the address",
		Path:        "addresses/{address_hash}/logs",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_tokens",
		Description: "Get address tokens",
		Path:        "addresses/{address_hash}/tokens",
		Slots:       []Slot{slotAddressHash},
		Filters:     []Filter{filterTokenType},
	},
	{
		Name:        "get_address_coin_balance_history",
		Description: "Get address coin balance history",
		Path:        "addresses/{address_hash}/coin-balance-history",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_coin_balance_history_by_day",
		Description: "Get address coin balance history by day",
		Path:        "addresses/{address_hash}/coin-balance-history-by-day",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_withdrawals",
		Description: "Get address withdrawals",
		Path:        "addresses/{address_hash}/withdrawals",
		Slots:       []Slot{slotAddressHash},
	},
	{
		Name:        "get_address_nfts",
		Description: "Get address NFTs",
		Path:        "addresses/{address_hash}/nft",
		Slots:       []Slot{slotAddressHash},
		Filters:     []Filter{filterTokenType},
	},
	{
		Name:        "get_address_nft_collections",
		Description: "Get address NFT collections",
		Path:        "addresses/{address_hash}/nft/collections",
		Slots:       []Slot{slotAddressHash},
		Filters:     []Filter{filterTokenType},
	},
	{
		Name:        "get_tokens",
		Description: "List top 50 tokens with the most holders",
		Path:        "tokens",
		Filters: []Filter{
			{Name: "q", Description: "filter tokens by name or symbol"},
			filterTokenType,
		},
	},
	{
		Name:        "get_token_info",
		Description: "Get token info",
		Path:        "tokens/{token_address}",
		Slots:       []Slot{slotTokenAddress},
	},
	{
		Name:        "get_token_transfers",
		Description: "List latest 50 transfers of the token",
		Path:        "tokens/{token_address}/transfers",
		Slots:       []Slot{slotTokenAddress},
	},
	{
		Name:        "get_token_holders",
		Description: "List top 50 holders of the token",
		Path:        "tokens/{token_address}/holders",
		Slots:       []Slot{slotTokenAddress},
	},
	{
		Name:        "get_token_counters",
		Description: "Get token counters",
		Path:        "tokens/{token_address}/counters",
		Slots:       []Slot{slotTokenAddress},
	},
	{
		Name:        "get_token_instances",
		Description: "List first 50 instances of the NFT",
		Path:        "tokens/{token_address}/instances",
		Slots:       []Slot{slotTokenAddress},
	},
	{
		Name:        "get_token_instance_info",
		Description: "Get NFT instance info",
		Path:        "tokens/{token_address}/instances/{token_id}",
		Slots:       []Slot{slotTokenAddress, slotTokenID},
	},
	{
		Name:        "get_token_instance_transfers",
		Description: "List latest 50 transfers of the NFT instance",
		Path:        "tokens/{token_address}/instances/{token_id}/transfers",
		Slots:       []Slot{slotTokenAddress, slotTokenID},
	},
	{
		Name:        "get_token_instance_holders",
		Description: "List first 50 holders of the NFT instance",
		Path:        "tokens/{token_address}/instances/{token_id}/holders",
		Slots:       []Slot{slotTokenAddress, slotTokenID},
	},
	{
		Name:        "get_token_instance_transfers_count",
		Description: "Get the NFT instance transfers count",
		Path:        "tokens/{token_address}/instances/{token_id}/transfers-count",
		Slots:       []Slot{slotTokenAddress, slotTokenID},
	},
}

// Catalog returns the full operation table.
func Catalog() []Operation {
	return catalog
}

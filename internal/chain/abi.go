package chain

// anchorContractABI mirrors the deployed anchoring contract. storeRecord
// reverts when the record hash already exists; that guard is what makes
// anchoring at-most-once per hash.
const anchorContractABI = `[
	{
		"type": "function",
		"name": "storeRecord",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "recordHash", "type": "bytes32"},
			{"name": "metadataCid", "type": "string"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "getRecord",
		"stateMutability": "view",
		"inputs": [
			{"name": "recordHash", "type": "bytes32"}
		],
		"outputs": [
			{"name": "metadataCid", "type": "string"},
			{"name": "timestamp", "type": "uint256"},
			{"name": "submitter", "type": "address"}
		]
	},
	{
		"type": "function",
		"name": "recordExists",
		"stateMutability": "view",
		"inputs": [
			{"name": "recordHash", "type": "bytes32"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"type": "event",
		"name": "RecordStored",
		"anonymous": false,
		"inputs": [
			{"name": "recordHash", "type": "bytes32", "indexed": true},
			{"name": "metadataCid", "type": "string", "indexed": false},
			{"name": "timestamp", "type": "uint256", "indexed": false},
			{"name": "submitter", "type": "address", "indexed": true}
		]
	}
]`

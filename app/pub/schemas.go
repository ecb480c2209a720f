package pub

// !!!NOTE!!!
// Changes to the schema below must be published to the consumers of the ledger events topic
// before the node that produces them is rolled out.

const (
	ledgerEventsSchema = `
		{
			"type": "record",
			"name": "LedgerEvents",
			"namespace": "org.uachain.ledger.avro",
			"fields": [
				{ "name": "height", "type": "long" },
				{ "name": "timestamp", "type": "long" },
				{ "name": "numOfMsgs", "type": "int" },
				{ "name": "events", "type": {
					"type": "array",
					"items": {
						"type": "record",
						"name": "LedgerEvent",
						"namespace": "org.uachain.ledger.avro",
						"fields": [
							{ "name": "route", "type": "string" },
							{ "name": "type", "type": "string" },
							{ "name": "signer", "type": "string" },
							{ "name": "attrs", "type": { "type": "map", "values": "string" } }
						]
					}
				}}
			]
		}
	`
)
